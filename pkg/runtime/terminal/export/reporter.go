package export

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

var (
	colorAccent = lipgloss.Color("#0969DA")
	colorMuted  = lipgloss.Color("#6E7781")
	colorBorder = lipgloss.Color("#D0D7DE")
)

var styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Key      lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Total    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Subtitle: lipgloss.NewStyle().Foreground(colorMuted),
	Section:  lipgloss.NewStyle().Bold(true).MarginTop(1),
	Key:      lipgloss.NewStyle().Foreground(colorMuted),
	Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Cell:     lipgloss.NewStyle().Padding(0, 1),
	Total:    lipgloss.NewStyle().Bold(true).MarginTop(1),
}

// Reporter renders reports as styled tables.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(report.Title))
	sb.WriteString("\n")
	if report.Subtitle != "" {
		sb.WriteString(styles.Subtitle.Render(report.Subtitle))
		sb.WriteString("\n")
	}

	for _, section := range report.Sections {
		sb.WriteString(styles.Section.Render("=== " + section.Title + " ==="))
		sb.WriteString("\n")

		keys := make([]string, 0, len(section.Summary))
		for k := range section.Summary {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "%s %v\n", styles.Key.Render(k+":"), section.Summary[k])
		}

		if len(section.Details) > 0 {
			sb.WriteString(detailsTable(section.Details))
			sb.WriteString("\n")
		}
	}

	if report.Currency != "" {
		sb.WriteString(styles.Total.Render(fmt.Sprintf("Total Amount: %s %.2f", report.Currency, report.TotalAmount)))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(c.writer, sb.String())
	return err
}

func detailsTable(details []domain.ReportDetail) string {
	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{d.Name, fmt.Sprint(d.Value), d.Unit, d.Description})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Name", "Value", "Unit", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		String()
}
