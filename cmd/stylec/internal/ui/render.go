package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/recera/stylecollector/pkg/styling"
)

// Style definitions
var (
	primaryColor  = lipgloss.Color("#3b82f6")
	modifierColor = lipgloss.Color("#f59e0b")
	mutedColor    = lipgloss.Color("#94a3b8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	baseSepStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	modifierSepStyle = lipgloss.NewStyle().
				Foreground(modifierColor).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// Printer writes summaries in one of the configured output formats
type Printer struct {
	Format string
	Color  bool
}

// Print writes sums to w
func (p Printer) Print(w io.Writer, sums []styling.Summary) error {
	switch p.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sums)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sums); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := io.WriteString(w, p.Text(sums))
		return err
	default:
		return fmt.Errorf("unknown output format %q", p.Format)
	}
}

// Text renders sums grouped by element, one line per definition
func (p Printer) Text(sums []styling.Summary) string {
	paint := func(s lipgloss.Style, text string) string {
		if !p.Color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	groups := lo.GroupBy(sums, func(s styling.Summary) string { return s.Element })
	for _, element := range lo.Uniq(lo.Map(sums, func(s styling.Summary, _ int) string { return s.Element })) {
		defs := groups[element]
		b.WriteString(paint(titleStyle, element))
		b.WriteString(paint(mutedStyle, fmt.Sprintf(" (%d)", len(defs))))
		b.WriteString("\n")
		for _, s := range defs {
			b.WriteString("  ")
			b.WriteString(paint(mutedStyle, fmt.Sprintf("%2d", s.Index)))
			b.WriteString(" ")
			b.WriteString(separator(s, paint))
			b.WriteString(" ")
			b.WriteString(fmt.Sprintf("%-*s", styling.HashLength, s.Hash))
			b.WriteString("  ")
			b.WriteString(s.Source)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Detail renders every field of a single summary
func Detail(s styling.Summary) string {
	var b strings.Builder
	kind := "element"
	if s.Conditional {
		kind = "modifier"
	}
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(s.ClassName))
	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("kind:       "), kind)
	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("hash:       "), s.Hash)
	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("separator:  "), s.Separator)
	fmt.Fprintf(&b, "%s %d\n", mutedStyle.Render("expressions:"), s.Expressions)
	fmt.Fprintf(&b, "\n%s\n", mutedStyle.Render("segments:"))
	for i, seg := range s.Styles {
		fmt.Fprintf(&b, "  [%d] %q\n", i, seg)
	}
	fmt.Fprintf(&b, "\n%s\n%s\n", mutedStyle.Render("source:"), s.Source)
	return b.String()
}

func separator(s styling.Summary, paint func(lipgloss.Style, string) string) string {
	if s.Conditional {
		return paint(modifierSepStyle, s.Separator)
	}
	return paint(baseSepStyle, s.Separator)
}
