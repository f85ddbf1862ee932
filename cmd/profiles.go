package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/minatbakat/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Validate and list the recommendation profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := newSource().Profiles(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		mbti, _ := cmd.Flags().GetString("mbti")
		riasec, _ := cmd.Flags().GetString("riasec")
		if mbti != "" || riasec != "" {
			p, ok := profile.Match(table, mbti, riasec)
			if !ok {
				return fmt.Errorf("no profile for %s / %s", mbti, riasec)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Fprintf(out, "%d profiles from %s\n\n", len(table), describeContent())
		fmt.Fprintf(out, "%-5s  %-6s  %s\n", "MBTI", "RIASEC", "Title")
		for _, p := range table {
			fmt.Fprintf(out, "%-5s  %-6s  %s\n", p.MBTIType, p.RIASECCode, p.Title)
		}
		return nil
	},
}

func init() {
	profilesCmd.Flags().String("mbti", "", "Show the full profile for this MBTI type (with --riasec)")
	profilesCmd.Flags().String("riasec", "", "Show the full profile for this RIASEC code (with --mbti)")
}
