package main

import (
	"fmt"

	"github.com/spf13/cobra"

	subjunctive "github.com/subjunctivo/learning-engine"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <verb> <tense> <person>",
	Short: "Conjugate a verb into a single subjunctive form",
	Long: `Conjugate prints the subjunctive form for a (verb, tense, person) triple.

tense is one of: present, imperfect-ra, imperfect-se
person is one of: 1sg, 2sg, 3sg, 1pl, 2pl, 3pl

Example:
  subjgen conjugate querer present 1sg`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tense, err := parseTense(args[1])
		if err != nil {
			return err
		}
		person, err := parsePerson(args[2])
		if err != nil {
			return err
		}
		form, err := subjunctive.Conjugate(args[0], tense, person)
		if err != nil {
			return err
		}
		fmt.Println(form)
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table <verb> <tense>",
	Short: "Print the full six-person conjugation table for a verb",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tense, err := parseTense(args[1])
		if err != nil {
			return err
		}
		table, err := subjunctive.FullTable(args[0], tense)
		if err != nil {
			return err
		}
		for _, p := range []subjunctive.Person{
			subjunctive.FirstSg, subjunctive.SecondSg, subjunctive.ThirdSg,
			subjunctive.FirstPl, subjunctive.SecondPl, subjunctive.ThirdPl,
		} {
			fmt.Printf("%-4s %s\n", p, table[p])
		}
		return nil
	},
}

func parseTense(s string) (subjunctive.Tense, error) {
	switch s {
	case "present":
		return subjunctive.PresentSubj, nil
	case "imperfect-ra":
		return subjunctive.ImperfectSubjRA, nil
	case "imperfect-se":
		return subjunctive.ImperfectSubjSE, nil
	default:
		return 0, fmt.Errorf("unknown tense %q (want present, imperfect-ra, imperfect-se)", s)
	}
}

func parsePerson(s string) (subjunctive.Person, error) {
	switch s {
	case "1sg":
		return subjunctive.FirstSg, nil
	case "2sg":
		return subjunctive.SecondSg, nil
	case "3sg":
		return subjunctive.ThirdSg, nil
	case "1pl":
		return subjunctive.FirstPl, nil
	case "2pl":
		return subjunctive.SecondPl, nil
	case "3pl":
		return subjunctive.ThirdPl, nil
	default:
		return 0, fmt.Errorf("unknown person %q (want 1sg, 2sg, 3sg, 1pl, 2pl, 3pl)", s)
	}
}
