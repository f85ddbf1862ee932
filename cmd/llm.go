package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/minatbakat/internal/advisor"
	"github.com/abhisek/minatbakat/internal/llm"
	"github.com/abhisek/minatbakat/internal/logging"
	"github.com/abhisek/minatbakat/internal/session"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and try the counselor LLM configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which LLM provider the advisor would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, ok := llm.Resolve(os.Getenv)
		if !ok {
			fmt.Fprintln(out, "No LLM provider configured; the counselor note is disabled.")
			fmt.Fprintf(out, "Set %sPROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY.\n", llm.EnvPrefix)
			return nil
		}

		model := llm.ResolveModel(c.Model)
		fmt.Fprintf(out, "Provider:  %s\n", c.Provider)
		fmt.Fprintf(out, "Model:     %s\n", model)
		if c.BaseURL != "" {
			fmt.Fprintf(out, "Endpoint:  %s\n", c.BaseURL)
		}
		fmt.Fprintf(out, "Timeout:   %s\n", c.Timeout)
		fmt.Fprintf(out, "Attempts:  %d\n", c.Backoff.Attempts)
		if price, ok := llm.PriceOf(model); ok {
			fmt.Fprintf(out, "Pricing:   $%.2f in / $%.2f out per 1M tokens\n", price.Input, price.Output)
		}
		status := "ok"
		if err := c.Validate(); err != nil {
			status = err.Error()
		}
		fmt.Fprintf(out, "Config:    %s\n", status)
		fmt.Fprintf(out, "Advisor:   %v\n", cfg.Advisor)
		return nil
	},
}

var llmTryCmd = &cobra.Command{
	Use:   "try [file]",
	Short: "Generate a counselor note for a saved answer set",
	Long: "Scores {participant, answers} from file (or stdin) and asks the configured provider\n" +
		"for a counselor note, whether or not a profile matches. Usage is logged to stderr.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(logging.Options{Verbose: true})
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		in, err := decodeScoreInput(raw)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		bank, err := newSource().Questions(ctx)
		if err != nil {
			return err
		}
		st, err := session.Replay(uuid.NewString(), in.Participant, bank, in.Answers)
		if err != nil {
			return err
		}

		c, ok := llm.Resolve(os.Getenv)
		if !ok {
			return fmt.Errorf("no LLM provider configured")
		}
		provider, err := llm.New(ctx, c, logger)
		if err != nil {
			return err
		}

		// Profiles are irrelevant here; score against an empty table.
		outcome := session.Result(st, nil, cfg.RIASECCodeLength)
		advice, err := advisor.NewService(provider, advisor.DefaultConfig()).Advise(ctx, adviceInput(st, outcome))
		if err != nil {
			return fmt.Errorf("generate advice: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s / %s\n%s\n\n%s\n", outcome.MBTI.Type, outcome.RIASEC.Code,
			strings.Repeat("─", 60), advice.Text())
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmTryCmd)
}
