package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

const reportTemplate = `{{.Title}}
{{if .Subtitle}}{{.Subtitle}}
{{end}}{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}{{if .Description}}
  {{.Description}}{{end}}
{{end}}{{end}}{{if .Currency}}
Total Amount: {{.Currency}} {{printf "%.2f" .TotalAmount}}
{{end}}`

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Parse(reportTemplate)),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	if err := c.tmpl.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
