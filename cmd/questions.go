package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/minatbakat/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate and list the question set",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := newSource().Questions(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(bank.Questions())
		}

		counts := bank.CountByKind()
		fmt.Fprintf(out, "%d questions from %s (%d mbti, %d riasec)\n\n",
			bank.Len(), describeContent(), counts[quiz.KindMBTI], counts[quiz.KindRIASEC])
		fmt.Fprintf(out, "%-4s  %-7s  %-3s  %s\n", "ID", "Type", "Key", "Text")
		for _, q := range bank.Questions() {
			key := q.PositiveFor
			if q.Kind == quiz.KindRIASEC {
				key = q.Dimension
			}
			text := q.Text
			if r := []rune(text); len(r) > 60 {
				text = string(r[:57]) + "..."
			}
			fmt.Fprintf(out, "%-4d  %-7s  %-3s  %s\n", q.ID, q.Kind, key, text)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("json", false, "Print the normalized question set as JSON")
}
