// Package quiz runs one assessment: answer ten questions, wait for the
// evaluation and show the result.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/skillmatch/skillmatch/internal/assessment"
	"github.com/skillmatch/skillmatch/internal/evaluation"
	"github.com/skillmatch/skillmatch/internal/logger"
	bank "github.com/skillmatch/skillmatch/internal/quiz"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

const spinnerInterval = 120 * time.Millisecond

type loadedMsg struct{ Err error }

type evaluatedMsg struct {
	Result *evaluation.Evaluation
	Err    error
}

type spinnerTickMsg time.Time

type copiedMsg struct{ Err error }

// QuizScreen drives an assessment.Attempt.
type QuizScreen struct {
	attempt   *assessment.Attempt
	selector  *bank.Selector
	evaluator evaluation.Evaluator
	board     *assessment.Board
	log       *logger.Logger

	input    components.TextInput
	blankHit bool
	pending  bool
	spinner  int
	status   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for role. Finished evaluations are added to
// board.
func New(role string, selector *bank.Selector, evaluator evaluation.Evaluator, board *assessment.Board, log *logger.Logger) *QuizScreen {
	if log == nil {
		log = logger.Nop()
	}
	return &QuizScreen{
		attempt:   assessment.NewAttempt(role),
		selector:  selector,
		evaluator: evaluator,
		board:     board,
		log:       log.With("quiz"),
		input:     components.NewTextInput("", "Type your answer...", 0),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	attempt, sel := s.attempt, s.selector
	return func() tea.Msg {
		return loadedMsg{Err: attempt.Load(sel)}
	}
}

func (s *QuizScreen) Title() string {
	return s.attempt.Role + " Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.evaluating() {
		return []layout.KeyHint{{Key: "Esc", Description: "Leave quiz"}}
	}
	switch s.attempt.Phase() {
	case assessment.PhaseTaking:
		next := "Next"
		if s.attempt.IsLast() {
			next = "Submit"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: next},
			{Key: "Ctrl+P", Description: "Previous"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	case assessment.PhaseResult:
		return []layout.KeyHint{
			{Key: "C", Description: "Copy summary"},
			{Key: "Enter", Description: "Back to dashboard"},
		}
	case assessment.PhaseError:
		if s.canRetry() {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry evaluation"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

// canRetry reports whether the failure happened at evaluation, so the
// answers can be resubmitted.
func (s *QuizScreen) canRetry() bool {
	return len(s.attempt.Questions()) > 0
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.log.Warn().Err(msg.Err).Str("role", s.attempt.Role).Msg("quiz selection failed")
			return s, nil
		}
		return s, s.input.Focus()

	case evaluatedMsg:
		s.pending = false
		if msg.Err != nil {
			s.log.Warn().Err(msg.Err).Str("role", s.attempt.Role).Msg("evaluation failed")
		}
		return s, nil

	case spinnerTickMsg:
		if !s.evaluating() {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case copiedMsg:
		if msg.Err != nil {
			s.status = "Could not copy: " + msg.Err.Error()
		} else {
			s.status = "Summary copied to clipboard."
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.attempt.Phase() == assessment.PhaseTaking && !s.evaluating() {
		return s.updateInput(msg)
	}
	return s, nil
}

// evaluating is true from submit until the evaluation result arrives.
func (s *QuizScreen) evaluating() bool {
	return s.pending || s.attempt.Phase() == assessment.PhaseEvaluating
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.evaluating() {
		return s, nil
	}
	switch s.attempt.Phase() {
	case assessment.PhaseTaking:
		switch msg.String() {
		case "enter":
			return s, s.advance()
		case "ctrl+p", "shift+tab":
			if s.attempt.Prev() {
				s.loadCurrentAnswer()
			}
			return s, nil
		}
		return s.updateInput(msg)

	case assessment.PhaseResult:
		switch msg.String() {
		case "c":
			res := s.attempt.Result()
			return s, func() tea.Msg { return copiedMsg{Err: copyToClipboard(res.Summary)} }
		case "enter":
			return s, router.Back()
		}

	case assessment.PhaseError:
		switch msg.String() {
		case "r":
			if s.canRetry() {
				return s, s.submit()
			}
		case "enter":
			return s, router.Back()
		}
	}
	return s, nil
}

func (s *QuizScreen) updateInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.attempt.SetAnswer(s.input.Value())
	if s.attempt.CanAdvance() {
		s.blankHit = false
	}
	return s, cmd
}

func (s *QuizScreen) advance() tea.Cmd {
	if !s.attempt.CanAdvance() {
		s.blankHit = true
		return nil
	}
	if s.attempt.IsLast() {
		return s.submit()
	}
	s.attempt.Next()
	s.loadCurrentAnswer()
	return nil
}

func (s *QuizScreen) loadCurrentAnswer() {
	_, ans := s.attempt.Current()
	s.input.SetValue(ans)
	s.blankHit = false
}

// submit starts the evaluation. The attempt rejects a second call while
// one is pending, so repeated key presses cannot double-submit.
func (s *QuizScreen) submit() tea.Cmd {
	if s.evaluating() {
		return nil
	}
	s.pending = true
	s.input.Blur()
	attempt, ev, board, log := s.attempt, s.evaluator, s.board, s.log
	eval := func() tea.Msg {
		res, err := attempt.Evaluate(context.Background(), ev)
		if err == nil && board != nil {
			board.Add(attempt.Role, res.Score, time.Now())
			log.Info().Str("role", attempt.Role).Int("score", res.Score).Msg("assessment scored")
		}
		return evaluatedMsg{Result: res, Err: err}
	}
	s.spinner = 0
	s.status = ""
	return tea.Batch(eval, spinnerTick())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
