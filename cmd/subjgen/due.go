package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	subjunctive "github.com/subjunctivo/learning-engine"
)

var dueLimit int

var dueCmd = &cobra.Command{
	Use:   "due <verb>...",
	Short: "Register PRESENT_SUBJ/1SG cards for the given verbs and list what's due now",
	Long: `due is a scheduler smoke test: it creates a fresh in-memory Engine, ensures
one PRESENT_SUBJ/1SG card per verb argument, and prints the due ordering.
Since every card is brand new, this mainly demonstrates the "new cards
last, lexical order" tail of the tiebreak cascade — a real caller persists
Engine state across invocations via ExportState/ImportState instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := subjunctive.New()
		now := time.Now().UTC()
		for _, verb := range args {
			if _, err := e.EnsureCard(verb, subjunctive.PresentSubj, subjunctive.FirstSg, now); err != nil {
				return err
			}
		}
		for _, id := range e.Due(now, dueLimit) {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().IntVar(&dueLimit, "limit", 0, "maximum number of cards to list; 0 means unlimited")
}
