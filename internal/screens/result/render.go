package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/report"
	"github.com/abhisek/minatbakat/internal/ui/components"
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// AdviceHeading introduces the optional counselor note.
const AdviceHeading = "Catatan dari Konselor AI"

// Render lays out a report at content width cw. The result is split into
// lines by the caller for scrolling.
func Render(r report.Report, cw int) string {
	wrap := lipgloss.NewStyle().Width(cw)

	p := r.Participant
	header := components.Card(lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render(report.HeadingFor),
		theme.Title.Render(p.Name),
		theme.Subtitle.Render(fmt.Sprintf("%s - Kelas %s", p.School, p.Grade)),
	), cw)

	if !r.Found {
		sections := []string{
			header,
			"",
			theme.ErrorText.Render(report.NotFoundTitle),
			wrap.Render(r.Fallback),
		}
		if r.Advice != "" {
			sections = append(sections, "", theme.Heading.Render(AdviceHeading), wrap.Render(r.Advice))
		}
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections := []string{
		header,
		"",
		theme.Title.Width(cw).Render(r.Title),
		theme.Subtitle.Width(cw).Render(r.Subtitle()),
		"",
		theme.Heading.Render(report.HeadingWhy),
		wrap.Render(r.ReasonWhy),
		"",
		theme.Heading.Render(report.HeadingMeaning),
		wrap.Render(r.WhatThisMeans),
		"",
		theme.Heading.Render(report.HeadingStrengths),
		bullets(r.Strengths, cw),
		"",
		theme.Heading.Render(report.HeadingWeaknesses),
		bullets(r.Weaknesses, cw),
		"",
		theme.Heading.Render(report.HeadingMajors),
		recommendations(r.Majors, cw),
		"",
		theme.Heading.Render(report.HeadingCareers),
		recommendations(r.Careers, cw),
		"",
		theme.Title.Width(cw).Render(report.HeadingAnalysis),
		"",
		theme.Heading.Render(report.HeadingRIASECBars),
		bars(r.RIASECBars, cw),
		"",
		theme.Heading.Render(report.HeadingMBTIBars),
		bars(r.MBTIBars, cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func bullets(items []string, cw int) string {
	style := lipgloss.NewStyle().Width(cw - 2)
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, "• ", style.Render(it))
	}
	return strings.Join(lines, "\n")
}

func recommendations(items []profile.Recommendation, cw int) string {
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	reason := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 2).PaddingLeft(2)
	lines := make([]string, 0, len(items)*2)
	for _, it := range items {
		lines = append(lines, name.Render("• "+it.Name), reason.Render(it.Reason))
	}
	return strings.Join(lines, "\n")
}

func bars(bs []report.Bar, cw int) string {
	lines := make([]string, len(bs))
	for i, b := range bs {
		lines[i] = components.ProgressBar{
			Label:   b.Label,
			Percent: b.Percent / 100,
			Suffix:  fmt.Sprintf("%3d", b.Value),
			Width:   cw,
		}.View()
	}
	return strings.Join(lines, "\n")
}
