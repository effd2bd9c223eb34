package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/assessment"
	"github.com/skillmatch/skillmatch/internal/evaluation"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *QuizScreen) View(width, height int) string {
	if s.evaluating() {
		return s.renderEvaluating(width, height)
	}
	switch s.attempt.Phase() {
	case assessment.PhaseLoading:
		return renderCentered(width, height,
			theme.Title.Render("Generating your quiz..."),
			theme.Subtitle.Render("Picking questions to test your skills."))
	case assessment.PhaseTaking:
		return s.renderQuestion(width)
	case assessment.PhaseResult:
		return s.renderResult(width)
	case assessment.PhaseError:
		return s.renderError(width, height)
	}
	return ""
}

func renderCentered(width, height int, lines ...string) string {
	return components.Center(strings.Join(lines, "\n\n"), width, height)
}

func (s *QuizScreen) renderQuestion(width int) string {
	cw := components.ContentWidth(width)
	total := len(s.attempt.Questions())
	idx := s.attempt.Index()
	q, _ := s.attempt.Current()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Question %d of %d", idx+1, total)))
	b.WriteString("\n")
	answers := s.attempt.Answers()
	done := make([]bool, total)
	for i := range done {
		done[i] = i < len(answers) && strings.TrimSpace(answers[i]) != ""
	}
	b.WriteString(components.StepBar{Done: done, Current: idx, Width: cw}.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if s.blankHit {
		b.WriteString(theme.ErrorText.Render("Please provide an answer before continuing."))
	} else if s.attempt.IsLast() {
		b.WriteString(theme.Hint.Render("Last question. Enter submits your answers."))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+b.String())
}

func (s *QuizScreen) renderEvaluating(width, height int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	return renderCentered(width, height,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(frame)+"  "+
			theme.Title.Render("Evaluating your answers..."),
		theme.Subtitle.Render("The AI is reviewing your submission."))
}

func (s *QuizScreen) renderError(width, height int) string {
	msg := "unknown error"
	if err := s.attempt.Err(); err != nil {
		msg = err.Error()
	}
	hint := "Press Esc to go back."
	if s.canRetry() {
		hint = "Press R to try again or Esc to go back. Your answers are kept."
	}
	return renderCentered(width, height,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong"),
		lipgloss.NewStyle().Width(min(components.ContentWidth(width), 70)).Foreground(theme.Text).Render(msg),
		theme.Hint.Render(hint))
}

func probabilityStyle(p evaluation.Probability) lipgloss.Style {
	switch p {
	case evaluation.ProbabilityHigh:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case evaluation.ProbabilityMedium:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return theme.Hint.Render("None")
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it
	}
	return strings.Join(lines, "\n")
}

func (s *QuizScreen) renderResult(width int) string {
	res := s.attempt.Result()
	if res == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Quiz Complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.ScoreColor(res.Score).Render(fmt.Sprintf("%d / 100", res.Score))))
	b.WriteString("\n\n")

	b.WriteString(components.Card(
		theme.Label.Render("AI-Powered Skill Summary")+"\n"+res.Summary, cw, false))
	b.WriteString("\n")
	b.WriteString(components.Card(
		theme.Label.Render("Interview Outlook")+"\n"+
			probabilityStyle(res.InterviewProbability).Render(string(res.InterviewProbability)), cw, false))
	b.WriteString("\n")
	b.WriteString(components.Card(
		theme.Label.Render("Key Improvement Areas")+"\n"+bulletList(res.ImprovementAreas), cw, false))
	b.WriteString("\n")
	b.WriteString(components.Card(
		theme.Label.Render("Potential Roles")+"\n"+bulletList(res.SuggestedJobTitles), cw, false))

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.status))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
