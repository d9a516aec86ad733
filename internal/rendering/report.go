package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

const defaultTemplate = "templates/report.html.tmpl"

var sectionLabels = map[types.Section]string{
	types.SectionPersonalInfo:   "Personal Info",
	types.SectionExperience:     "Experience",
	types.SectionSkills:         "Skills",
	types.SectionEducation:      "Education",
	types.SectionCertifications: "Certifications",
}

// ReportData is the data passed to the report template
type ReportData struct {
	Name         string
	JobTitle     string
	Industry     string
	Score        int
	Status       types.SectionStatus
	Sections     []SectionRow
	Found        []string
	Missing      []string
	KeywordTotal int
	Metrics      types.MetricsAnalysis
	Suggestions  []types.Suggestion
}

// SectionRow is one line of the sections table
type SectionRow struct {
	Section     types.Section
	Label       string
	Score       int
	Status      types.SectionStatus
	Suggestions []string
}

// BuildReportData flattens an analysis into template-friendly rows. Sections appear in
// canonical order.
func BuildReportData(doc *types.ResumeDocument, result *types.AnalysisResult) ReportData {
	data := ReportData{
		JobTitle:     result.JobTitle,
		Industry:     result.Industry,
		Score:        result.OverallScore,
		Status:       types.StatusFor(result.OverallScore),
		Found:        result.Keywords.Found,
		Missing:      result.Keywords.TopMissing,
		KeywordTotal: result.Keywords.Total,
		Metrics:      result.Metrics,
		Suggestions:  result.Suggestions,
	}
	if doc != nil {
		data.Name = doc.PersonalInfo.FullName()
	}
	for _, name := range types.Sections() {
		a, ok := result.Sections[name]
		if !ok {
			continue
		}
		data.Sections = append(data.Sections, SectionRow{
			Section:     name,
			Label:       sectionLabels[name],
			Score:       a.Score,
			Status:      a.Status,
			Suggestions: a.Suggestions,
		})
	}
	return data
}

// RenderReportHTML renders result as a standalone HTML page using the built-in template.
func RenderReportHTML(doc *types.ResumeDocument, result *types.AnalysisResult) (string, error) {
	tmpl, err := template.ParseFS(templateFS, defaultTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse built-in template", Cause: err}
	}
	return execute(tmpl, doc, result)
}

// RenderReportHTMLWithTemplate renders result with the html/template file at templatePath.
func RenderReportHTMLWithTemplate(templatePath string, doc *types.ResumeDocument, result *types.AnalysisResult) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, doc, result)
}

func execute(tmpl *template.Template, doc *types.ResumeDocument, result *types.AnalysisResult) (string, error) {
	if result == nil {
		return "", &RenderError{Message: "analysis result is nil"}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, BuildReportData(doc, result)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return out.String(), nil
}

// parseTemplate reads and parses a report template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("report").Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}
