package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/minatbakat/internal/config"
)

var (
	v   = config.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minatbakat",
	Short: "MBTI + RIASEC career aptitude test",
	Long: "Minat Bakat: a terminal aptitude test for high-school students that combines an MBTI\n" +
		"personality type with a RIASEC interest code and recommends college majors and careers.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, file)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "Config file (default ./minatbakat.yaml or $XDG_CONFIG_HOME/minatbakat/minatbakat.yaml)")
	f.String("content", "embedded", `Question/profile source: "embedded", a directory, or an http(s) base URL`)
	f.Int("riasec-code-length", 2, "Number of RIASEC letters in the code (2 or 3)")
	f.String("webhook-url", "", "Endpoint that receives matched results")
	f.Duration("webhook-timeout", 0, "Timeout for the result webhook (default 10s)")
	f.String("log-file", "", "Log file (the TUI defaults to $XDG_STATE_HOME/minatbakat/minatbakat.log)")
	f.BoolP("verbose", "v", false, "Enable debug logging")
	f.Bool("advisor", true, "Ask the configured LLM for a counselor note when no profile matches")

	mustBind(v, map[string]string{
		config.KeyContent:          "content",
		config.KeyRIASECCodeLength: "riasec-code-length",
		config.KeyWebhookURL:       "webhook-url",
		config.KeyWebhookTimeout:   "webhook-timeout",
		config.KeyLogFile:          "log-file",
		config.KeyVerbose:          "verbose",
		config.KeyAdvisor:          "advisor",
	}, rootCmd)

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// mustBind binds config keys to persistent flags. Only flags the user
// actually sets override env and file values.
func mustBind(v *viper.Viper, keys map[string]string, c *cobra.Command) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, c.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}
}
