package main

import (
	"fmt"

	"github.com/spf13/cobra"

	subjunctive "github.com/subjunctivo/learning-engine"
)

var (
	genDifficulty int
	genCategory   string
	genTense      string
	genSeed       int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one practice exercise",
	Long: `Generate assembles one exercise from the trigger catalog at the requested
difficulty level (1=beginner .. 4=expert).

Example:
  subjgen generate --difficulty 2 --category wishes --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := subjunctive.GenerateOptions{
			Difficulty: subjunctive.DifficultyLevel(genDifficulty),
			Seed:       genSeed,
		}
		if genCategory != "" {
			cat, err := parseCategory(genCategory)
			if err != nil {
				return err
			}
			opts.Category = &cat
		}
		if genTense != "" {
			tense, err := parseTense(genTense)
			if err != nil {
				return err
			}
			opts.Tense = &tense
		}

		ex, err := subjunctive.Generate(opts)
		if err != nil {
			return err
		}

		fmt.Println(ex.Prompt)
		fmt.Printf("expected: %s\n", ex.Expected)
		if len(ex.Alternatives) > 0 {
			fmt.Printf("also accepted: %v\n", ex.Alternatives)
		}
		for _, h := range ex.Hints {
			fmt.Printf("hint: %s\n", h)
		}
		fmt.Println(ex.Explanation)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&genDifficulty, "difficulty", 1, "difficulty level 1-4")
	generateCmd.Flags().StringVar(&genCategory, "category", "", "trigger category (wishes, emotions, impersonal, recommendations, doubt-denial, ojala)")
	generateCmd.Flags().StringVar(&genTense, "tense", "", "tense (present, imperfect-ra, imperfect-se)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "determinism seed; 0 picks unpredictably")
}

func parseCategory(s string) (subjunctive.TriggerCategory, error) {
	switch s {
	case "wishes":
		return subjunctive.Wishes, nil
	case "emotions":
		return subjunctive.Emotions, nil
	case "impersonal":
		return subjunctive.Impersonal, nil
	case "recommendations":
		return subjunctive.Recommendations, nil
	case "doubt-denial":
		return subjunctive.DoubtDenial, nil
	case "ojala":
		return subjunctive.Ojala, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}
