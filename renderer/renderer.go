// Package renderer turns analysis results into markdown documents and the
// plain text report.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/date"
)

//go:embed templates/*.md
var templates embed.FS

// Highlights renders the sector highlights text report.
func Highlights(h corrmap.SectorHighlights) string {
	return renderTemplate("highlights", "templates/highlights.md", nil, h)
}

// Report is the content of the full markdown report.
type Report struct {
	Period       string
	Range        date.Range
	Assets       int
	Sectors      int
	Dates        int
	Missing      []corrmap.Symbol
	SectorMatrix string                    // markdown
	Highlights   *corrmap.SectorHighlights // nil when there are none
	Drivers      string                    // markdown, may be empty
}

// NewReport collects the report content of an analysis. drivers is optional.
func NewReport(a *corrmap.Analysis, drivers *corrmap.DriverList) *Report {
	r := &Report{
		Period:       a.Universe.Range.Label(),
		Range:        a.Universe.Range,
		Assets:       a.Assets.Len(),
		Sectors:      a.Sectors.Len(),
		Dates:        a.Returns.Len(),
		SectorMatrix: SectorMatrixMarkdown(a.Sectors),
	}
	available := make(map[corrmap.Symbol]bool)
	for _, s := range a.Available() {
		available[s] = true
	}
	for _, s := range a.Universe.Symbols() {
		if !available[s] {
			r.Missing = append(r.Missing, s)
		}
	}
	if h, err := a.Highlights(); err == nil {
		r.Highlights = &h
	}
	if drivers != nil {
		r.Drivers = DriversMarkdown(*drivers, r.Period)
	}
	return r
}

// ReportMarkdown renders the full report.
func ReportMarkdown(r *Report) string {
	partials := map[string]string{
		"report_summary":    "templates/report_summary.md",
		"report_highlights": "templates/report_highlights.md",
	}
	return renderTemplate("report", "templates/report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
