package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-flex"
)

// reportStyles are the lipgloss styles used for one report.
type reportStyles struct {
	name    lipgloss.Style
	metric  lipgloss.Style
	numbers lipgloss.Style
}

func newReportStyles(r *lipgloss.Renderer) reportStyles {
	return reportStyles{
		name:    r.NewStyle().Bold(true),
		metric:  r.NewStyle().Faint(true),
		numbers: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// dumpFile lays out one document and returns its report.
func dumpFile(path string, cfg config, r *lipgloss.Renderer) (string, error) {
	doc, err := loadDocument(path, cfg.precision)
	if err != nil {
		return "", err
	}
	return dumpDocument(doc, cfg, r)
}

func dumpDocument(doc *document, cfg config, r *lipgloss.Renderer) (string, error) {
	t, err := doc.build()
	if err != nil {
		return "", err
	}
	defer t.destroy()

	if err := t.root.CalculateLayout(cfg.width, cfg.height, cfg.dir); err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := t.report(&sb, t.root, 0, newReportStyles(r)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var reportMetrics = []string{"left", "top", "width", "height"}

// report writes one line per node, children in layout order, indented by
// depth.
func (t *tree) report(sb *strings.Builder, n *flex.Node, depth int, styles reportStyles) error {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(styles.name.Render(t.names[n]))

	for _, metric := range reportMetrics {
		v, err := n.GetComputedLayout(metric)
		if err != nil {
			return fmt.Errorf("%s: %w", t.names[n], err)
		}
		fmt.Fprintf(sb, " %s=%s",
			styles.metric.Render(metric),
			styles.numbers.Render(strconv.FormatFloat(v, 'f', -1, 64)))
	}
	sb.WriteByte('\n')

	for _, child := range n.Children() {
		if err := t.report(sb, child, depth+1, styles); err != nil {
			return err
		}
	}
	return nil
}
