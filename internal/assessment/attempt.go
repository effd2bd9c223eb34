// Package assessment tracks a single quiz attempt and the scorecards of
// finished attempts.
package assessment

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/skillmatch/skillmatch/internal/evaluation"
	"github.com/skillmatch/skillmatch/internal/llm"
	"github.com/skillmatch/skillmatch/internal/quiz"
)

// Phase is where an attempt is in its lifecycle.
type Phase int

const (
	PhaseLoading    Phase = iota // Selecting questions
	PhaseTaking                  // Answering questions
	PhaseEvaluating              // Waiting for the evaluation service
	PhaseResult                  // Evaluation received
	PhaseError                   // Selection or evaluation failed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseTaking:
		return "taking"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrEvaluationInFlight is returned when Evaluate is called while a
	// previous call on the same attempt has not finished.
	ErrEvaluationInFlight = errors.New("evaluation already in progress")

	// ErrAlreadyEvaluated is returned when the attempt already has a result.
	ErrAlreadyEvaluated = errors.New("attempt already evaluated")

	// ErrNotReady is returned when the attempt has no questions yet.
	ErrNotReady = errors.New("quiz is not loaded")
)

// Attempt is one run through a quiz for a role. Navigation methods are
// meant for the UI goroutine; Evaluate may run on another goroutine.
type Attempt struct {
	ID   string
	Role string

	mu        sync.Mutex
	phase     Phase
	questions []quiz.Question
	answers   []string
	current   int
	result    *evaluation.Evaluation
	err       error
}

// NewAttempt returns an attempt in PhaseLoading.
func NewAttempt(role string) *Attempt {
	return &Attempt{ID: uuid.NewString(), Role: role, phase: PhaseLoading}
}

// Load selects questions with sel and moves to PhaseTaking, or to
// PhaseError when selection fails.
func (a *Attempt) Load(sel *quiz.Selector) error {
	qs, err := sel.Select(a.Role)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.phase = PhaseError
		a.err = err
		return err
	}
	a.questions = qs
	a.answers = make([]string, len(qs))
	a.current = 0
	a.phase = PhaseTaking
	return nil
}

// Phase returns the current phase.
func (a *Attempt) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Err returns the failure that moved the attempt to PhaseError.
func (a *Attempt) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Result returns the evaluation once in PhaseResult.
func (a *Attempt) Result() *evaluation.Evaluation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Questions returns the selected questions.
func (a *Attempt) Questions() []quiz.Question {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]quiz.Question(nil), a.questions...)
}

// Answers returns a copy of the answers so far.
func (a *Attempt) Answers() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.answers...)
}

// Index returns the zero-based index of the current question.
func (a *Attempt) Index() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Current returns the current question and its answer.
func (a *Attempt) Current() (quiz.Question, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.questions) == 0 {
		return quiz.Question{}, ""
	}
	return a.questions[a.current], a.answers[a.current]
}

// SetAnswer records the answer to the current question.
func (a *Attempt) SetAnswer(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseTaking || len(a.answers) == 0 {
		return
	}
	a.answers[a.current] = text
}

// CanAdvance reports whether the current answer is non-blank.
func (a *Attempt) CanAdvance() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.canAdvanceLocked()
}

func (a *Attempt) canAdvanceLocked() bool {
	return a.phase == PhaseTaking && len(a.answers) > 0 &&
		strings.TrimSpace(a.answers[a.current]) != ""
}

// IsLast reports whether the current question is the final one.
func (a *Attempt) IsLast() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current == len(a.questions)-1
}

// Next moves to the following question. It returns false when the current
// answer is blank or this is the last question.
func (a *Attempt) Next() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.canAdvanceLocked() || a.current >= len(a.questions)-1 {
		return false
	}
	a.current++
	return true
}

// Prev moves to the previous question.
func (a *Attempt) Prev() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseTaking || a.current == 0 {
		return false
	}
	a.current--
	return true
}

// Evaluate submits the answers through ev. Only one evaluation runs per
// attempt: a concurrent call returns ErrEvaluationInFlight and a call after
// success returns ErrAlreadyEvaluated. A failed evaluation leaves the
// attempt in PhaseError with its answers intact so it can be retried.
func (a *Attempt) Evaluate(ctx context.Context, ev evaluation.Evaluator) (*evaluation.Evaluation, error) {
	a.mu.Lock()
	switch a.phase {
	case PhaseEvaluating:
		a.mu.Unlock()
		return nil, ErrEvaluationInFlight
	case PhaseResult:
		a.mu.Unlock()
		return nil, ErrAlreadyEvaluated
	case PhaseLoading:
		a.mu.Unlock()
		return nil, ErrNotReady
	}
	if len(a.questions) == 0 {
		a.mu.Unlock()
		return nil, ErrNotReady
	}
	a.phase = PhaseEvaluating
	a.err = nil
	questions := append([]quiz.Question(nil), a.questions...)
	answers := append([]string(nil), a.answers...)
	a.mu.Unlock()

	result, err := ev.Evaluate(llm.WithAttempt(ctx, a.ID), a.Role, questions, answers)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.phase = PhaseError
		a.err = err
		return nil, err
	}
	a.phase = PhaseResult
	a.result = result
	return result, nil
}
