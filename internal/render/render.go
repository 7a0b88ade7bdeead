package render

import (
	"fmt"
	"io"
	"strings"

	"httpcore/internal/config"
	"httpcore/internal/lint"
	"httpcore/status"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Renderer struct {
	out    io.Writer
	styles styles
}

type styles struct {
	severity map[lint.Severity]lipgloss.Style
	location lipgloss.Style
	subject  lipgloss.Style
	summary  lipgloss.Style

	informational lipgloss.Style
	success       lipgloss.Style
	redirection   lipgloss.Style
	clientError   lipgloss.Style
	serverError   lipgloss.Style
}

func New(w io.Writer, mode config.ColorMode) *Renderer {
	re := lipgloss.NewRenderer(w)
	switch {
	case mode == config.ColorAlways:
		re.SetColorProfile(termenv.TrueColor)
	case mode == config.ColorNever, termenv.EnvNoColor():
		re.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{out: w, styles: newStyles(re)}
}

func newStyles(re *lipgloss.Renderer) styles {
	return styles{
		severity: map[lint.Severity]lipgloss.Style{
			lint.SeverityInfo:    re.NewStyle().Foreground(lipgloss.Color("#888888")),
			lint.SeverityWarning: re.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2C94C")),
			lint.SeverityError:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("#EB5757")),
		},
		location: re.NewStyle().Foreground(lipgloss.Color("#666666")),
		subject:  re.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		summary:  re.NewStyle().Italic(true).MarginTop(1),

		informational: re.NewStyle().Foreground(lipgloss.Color("#888888")),
		success:       re.NewStyle().Foreground(lipgloss.Color("#04B575")),
		redirection:   re.NewStyle().Foreground(lipgloss.Color("#56CCF2")),
		clientError:   re.NewStyle().Foreground(lipgloss.Color("#F2C94C")),
		serverError:   re.NewStyle().Foreground(lipgloss.Color("#EB5757")),
	}
}

func (r *Renderer) Report(report lint.Report) error {
	var b strings.Builder
	for _, f := range report {
		b.WriteString(r.finding(f))
		b.WriteByte('\n')
	}
	b.WriteString(r.styles.summary.Render(summary(report)))
	b.WriteByte('\n')

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) finding(f lint.Finding) string {
	sev := fmt.Sprintf("%-5s", f.Severity)
	parts := []string{
		r.styles.severity[f.Severity].Render(sev),
		r.styles.location.Render(f.Location()),
	}
	if f.Subject != "" {
		subject := r.styles.subject
		if !f.Status.IsZero() {
			subject = r.statusStyle(f.Status)
		}
		parts = append(parts, subject.Render(f.Subject))
	}
	parts = append(parts, f.Message)
	return strings.Join(parts, " ")
}

func (r *Renderer) statusStyle(c status.Code) lipgloss.Style {
	switch {
	case c.IsInformational():
		return r.styles.informational
	case c.IsSuccess():
		return r.styles.success
	case c.IsRedirection():
		return r.styles.redirection
	case c.IsClientError():
		return r.styles.clientError
	case c.IsServerError():
		return r.styles.serverError
	default:
		return r.styles.subject
	}
}

func summary(report lint.Report) string {
	if len(report) == 0 {
		return "no findings"
	}
	return fmt.Sprintf("%d error(s), %d warning(s), %d note(s)",
		report.Count(lint.SeverityError),
		report.Count(lint.SeverityWarning),
		report.Count(lint.SeverityInfo))
}
