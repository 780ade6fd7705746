package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/match"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	kindHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 0)

	resultStyle = lipgloss.NewStyle().
			Margin(0, 0, 0, 2)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32")).
			Margin(1, 0, 0, 0)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

var titleCaser = cases.Title(language.English)

// kindLabel turns a kind identifier into a display heading,
// e.g. "direct_client" becomes "Direct Client".
func kindLabel(kind core.Kind) string {
	return titleCaser.String(strings.ReplaceAll(string(kind), "_", " "))
}

// renderResults prints matches grouped by kind, preserving the order the
// results arrived in.
func renderResults(query string, results []match.Result) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Results for %q", query)))

	if len(results) == 0 {
		fmt.Println(noDataStyle.Render("No matches."))
		return
	}

	var currentKind core.Kind
	for _, r := range results {
		if r.Kind != currentKind {
			currentKind = r.Kind
			fmt.Println(kindHeaderStyle.Render(kindLabel(currentKind)))
		}
		line := fmt.Sprintf("%s %s", r.Entity.Display(),
			metaStyle.Render(fmt.Sprintf("(%s: %s)", r.Field, r.Entity.Ref())))
		fmt.Println(resultStyle.Render(line))
	}

	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d result(s)", len(results))))
}
