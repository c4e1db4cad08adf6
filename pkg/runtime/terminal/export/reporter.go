package export

import (
	"fmt"
	"io"
	"os"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/fatih/color"
)

// Reporter renders a diagnosis as a severity-colored terminal report.
type Reporter struct {
	writer io.Writer

	critical *color.Color
	warning  *color.Color
	info     *color.Color
	heading  *color.Color
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:   writer,
		critical: color.New(color.FgRed, color.Bold),
		warning:  color.New(color.FgYellow),
		info:     color.New(color.FgCyan),
		heading:  color.New(color.Bold),
	}
}

func (r *Reporter) Handle(project domain.Project, d domain.Diagnosis) error {
	r.heading.Fprintf(r.writer, "Diagnosis for %s (%s, nominal %.0fV)\n",
		project.Name, project.SystemType, project.NominalVoltage)
	fmt.Fprintf(r.writer, "Generated: %s\n", d.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(r.writer, "Overall severity: %s\n", r.colored(d.OverallSeverity))

	if d.SafetyAlert != "" {
		r.critical.Fprintf(r.writer, "\n!! %s\n", d.SafetyAlert)
	}

	fmt.Fprintf(r.writer, "\nIssues (%d):\n", len(d.Issues))
	for _, issue := range d.Issues {
		fmt.Fprintf(r.writer, "  [%s] %s: %s\n", r.colored(issue.Severity), issue.Code, issue.Description)
		for _, cause := range issue.PossibleCauses {
			fmt.Fprintf(r.writer, "      possible cause: %s\n", cause)
		}
	}

	if len(d.Recommendations) > 0 {
		fmt.Fprintf(r.writer, "\nRecommendations:\n")
		for _, rec := range d.Recommendations {
			fmt.Fprintf(r.writer, "  %d. %s", rec.Priority, rec.Action)
			if rec.EstimatedTime != "" {
				fmt.Fprintf(r.writer, " (est. %s)", rec.EstimatedTime)
			}
			fmt.Fprintln(r.writer)
			for _, precaution := range rec.SafetyPrecautions {
				fmt.Fprintf(r.writer, "     safety: %s\n", precaution)
			}
		}
	}

	return nil
}

func (r *Reporter) colored(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return r.critical.Sprint(string(s))
	case domain.SeverityWarning:
		return r.warning.Sprint(string(s))
	default:
		return r.info.Sprint(string(s))
	}
}
