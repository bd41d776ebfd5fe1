package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/trezcool/gradecalc/core/grade"
)

type styles struct {
	header  lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	dim     lipgloss.Style
}

// newStyles returns colored styles, or plain ones when output is not a terminal.
func newStyles(colorize bool) styles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return styles{header: plain, value: plain, success: plain, warning: plain, danger: plain, dim: plain}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		value:   lipgloss.NewStyle().Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s styles) severity(sev grade.Severity) lipgloss.Style {
	switch sev {
	case grade.SeveritySuccess:
		return s.success
	case grade.SeverityWarning:
		return s.warning
	default:
		return s.danger
	}
}

func pct(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}

func gpa(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func (cli *commandLine) printSuggestion(sugg grade.Suggestion) {
	style := cli.styles.severity(sugg.Severity)
	fmt.Fprintf(cli.out, "%s %s\n", style.Render("["+string(sugg.Difficulty)+"]"), sugg.Message)
}

func (cli *commandLine) printNeeded(res grade.NeededResult, projection bool) {
	s := cli.styles
	fmt.Fprintf(cli.out, "Needed score: %s\n", s.value.Render(pct(res.Needed)))
	cli.printSuggestion(res.Suggestion)
	if !projection {
		return
	}
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, s.header.Render(fmt.Sprintf("%-8s %-8s %s", "Score", "Final", "Letter")))
	for _, p := range res.Projection {
		fmt.Fprintf(cli.out, "%-8s %-8s %s\n", pct(p.Score), pct(p.Final), p.Letter)
	}
}

func (cli *commandLine) printPredicted(res grade.PredictedResult) {
	s := cli.styles
	fmt.Fprintf(cli.out, "Final grade: %s (%s, GPA %s)\n", s.value.Render(pct(res.Final)), res.Letter, gpa(res.GPA))
}

func (cli *commandLine) printConversion(res grade.ConversionResult) {
	s := cli.styles
	fmt.Fprintf(cli.out, "Percentage: %s\n", s.value.Render(pct(res.Percentage)))
	fmt.Fprintf(cli.out, "Letter: %s\n", s.value.Render(res.Letter))
	fmt.Fprintf(cli.out, "GPA: %s\n", s.value.Render(gpa(res.GPA)))
}

func (cli *commandLine) printWeighted(res grade.WeightedResult) {
	s := cli.styles

	fmt.Fprintln(cli.out, s.header.Render(fmt.Sprintf("%-20s %-8s %-12s %s", "Component", "Weight", "Score", "Contribution")))
	for _, c := range res.Breakdown {
		weight, score, contrib := "-", s.dim.Render(fmt.Sprintf("%-12s", "not graded")), "-"
		if c.Weight != nil {
			weight = pct(*c.Weight)
		}
		if c.Score != nil {
			score = fmt.Sprintf("%-12s", pct(*c.Score))
		}
		if c.Contribution != nil {
			contrib = pct(*c.Contribution)
		}
		fmt.Fprintf(cli.out, "%-20s %-8s %s %s\n", c.Name, weight, score, contrib)
	}
	fmt.Fprintln(cli.out)

	fmt.Fprintf(cli.out, "Total weight: %s\n", pct(res.TotalWeight))
	if res.Current != nil {
		fmt.Fprintf(cli.out, "Current grade: %s (%s)\n", s.value.Render(pct(*res.Current)), res.Letter)
	}
	if res.Needed != nil {
		fmt.Fprintf(cli.out, "Needed on the remaining %s: %s (%s)\n",
			pct(res.RemainingWeight), s.value.Render(pct(*res.Needed)), res.NeededLetter)
	}
	if res.Suggestion != nil {
		cli.printSuggestion(*res.Suggestion)
	}
	for _, n := range res.Notes {
		fmt.Fprintf(cli.out, "%s %s\n", s.success.Render("note:"), n)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(cli.out, "%s %s\n", s.warning.Render("warning:"), w)
	}
}

func (cli *commandLine) printScale(bands []grade.Band) {
	s := cli.styles
	fmt.Fprintln(cli.out, s.header.Render(fmt.Sprintf("%-7s %-14s %s", "Letter", "Range", "GPA")))
	for _, b := range bands {
		fmt.Fprintf(cli.out, "%-7s %-14s %s\n", b.Letter, pct(b.Min)+" - "+pct(b.Max), gpa(b.GPA))
	}
}
