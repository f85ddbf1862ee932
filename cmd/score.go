package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/minatbakat/internal/advisor"
	"github.com/abhisek/minatbakat/internal/logging"
	"github.com/abhisek/minatbakat/internal/notify"
	"github.com/abhisek/minatbakat/internal/quiz"
	"github.com/abhisek/minatbakat/internal/report"
	"github.com/abhisek/minatbakat/internal/session"
)

// scoreInput is a saved run: who took it and the answer per question id.
type scoreInput struct {
	Participant quiz.Participant `json:"participant" yaml:"participant"`
	Answers     map[int]int      `json:"answers" yaml:"answers"`
}

// decodeScoreInput accepts JSON or YAML. JSON object keys are strings,
// so JSON is tried first when the document looks like one.
func decodeScoreInput(raw []byte) (scoreInput, error) {
	var in scoreInput
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &in); err != nil {
			return in, fmt.Errorf("decode json: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("decode yaml: %w", err)
	}
	if len(in.Answers) == 0 {
		return in, errors.New("no answers in input")
	}
	return in, nil
}

func adviceInput(st session.State, o session.Outcome) advisor.Input {
	return advisor.Input{Grade: st.Participant.Grade, MBTI: o.MBTI, RIASEC: o.RIASEC}
}

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a saved answer set and print the report",
	Long: "Reads {participant, answers} as JSON or YAML from file (or stdin when file is\n" +
		"omitted or \"-\"), scores it against the configured content and prints the report.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: cfg.Verbose})
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
		src := newSource()
		bank, err := src.Questions(ctx)
		if err != nil {
			return err
		}
		st, err := session.Replay(uuid.NewString(), in.Participant, bank, in.Answers)
		if err != nil {
			return err
		}
		table, err := src.Profiles(ctx)
		if err != nil {
			return err
		}

		outcome := session.Result(st, table, cfg.RIASECCodeLength)
		rep := outcome.Report(st)
		logger.Debug("scored",
			zap.String("run", st.ID),
			zap.String("mbti", rep.MBTIType),
			zap.String("riasec", rep.RIASECCode),
			zap.Bool("matched", rep.Found),
		)

		if !rep.Found {
			if svc := newAdvisor(ctx, logger); svc.Enabled() {
				advice, err := svc.Advise(ctx, adviceInput(st, outcome))
				if err != nil {
					logger.Warn("advice unavailable", zap.Error(err))
				} else {
					rep.Advice = advice.Text()
				}
			}
		}

		if send, _ := cmd.Flags().GetBool("notify"); send {
			if p, ok := notify.FromReport(rep); ok {
				n := newNotifier(logger, nil)
				n.Fire(p)
				n.Wait()
			}
		}

		format, _ := cmd.Flags().GetString("format")
		return writeReport(cmd.OutOrStdout(), rep, format)
	},
}

func init() {
	scoreCmd.Flags().String("format", "json", "Output format: json or text")
	scoreCmd.Flags().Bool("notify", false, "Send matched results to the configured webhook")
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return raw, nil
}

func writeReport(w io.Writer, rep report.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "text":
		return writeReportText(w, rep)
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}

func writeReportText(w io.Writer, rep report.Report) error {
	p := rep.Participant
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n%s (%s - Kelas %s)\n\n", report.HeadingFor, p.Name, p.School, p.Grade)

	if !rep.Found {
		fmt.Fprintf(&b, "%s\n%s\n", report.NotFoundTitle, rep.Fallback)
		if rep.Advice != "" {
			fmt.Fprintf(&b, "\n%s\n", rep.Advice)
		}
		_, err := w.Write(b.Bytes())
		return err
	}

	fmt.Fprintf(&b, "%s\n%s\n\n", rep.Title, rep.Subtitle())
	fmt.Fprintf(&b, "%s\n%s\n\n", report.HeadingWhy, rep.ReasonWhy)
	fmt.Fprintf(&b, "%s\n%s\n\n", report.HeadingMeaning, rep.WhatThisMeans)
	writeList(&b, report.HeadingStrengths, rep.Strengths)
	writeList(&b, report.HeadingWeaknesses, rep.Weaknesses)

	fmt.Fprintln(&b, report.HeadingMajors)
	for _, m := range rep.Majors {
		fmt.Fprintf(&b, "  - %s: %s\n", m.Name, m.Reason)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, report.HeadingCareers)
	for _, c := range rep.Careers {
		fmt.Fprintf(&b, "  - %s: %s\n", c.Name, c.Reason)
	}
	fmt.Fprintln(&b)

	writeBars(&b, report.HeadingRIASECBars, rep.RIASECBars)
	writeBars(&b, report.HeadingMBTIBars, rep.MBTIBars)

	_, err := w.Write(b.Bytes())
	return err
}

func writeList(b *bytes.Buffer, heading string, items []string) {
	fmt.Fprintln(b, heading)
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it)
	}
	fmt.Fprintln(b)
}

func writeBars(b *bytes.Buffer, heading string, bars []report.Bar) {
	const width = 30
	fmt.Fprintln(b, heading)
	for _, bar := range bars {
		filled := int(bar.Percent / 100 * width)
		fmt.Fprintf(b, "  %-1s %s%s %3d\n", bar.Label,
			bytes.Repeat([]byte("#"), filled), bytes.Repeat([]byte("."), width-filled), bar.Value)
	}
	fmt.Fprintln(b)
}
