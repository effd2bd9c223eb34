// Package quiz selects skill-quiz questions for a job role from the offline
// question bank.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
)

// QuestionsPerQuiz is the exact size of every quiz.
const QuestionsPerQuiz = 10

// fallbackTrigger and fallbackTag implement the generic-engineering
// fallback for developer roles without their own tag.
const (
	fallbackTrigger = "developer"
	fallbackTag     = TagEngineering
)

// Question is one quiz prompt shown to the candidate.
type Question struct {
	Text string `json:"question"`
}

// BankItem is a question in the bank with its lower-case tags.
type BankItem struct {
	Text string
	Tags []string
}

// HasTag reports whether the item carries tag.
func (b BankItem) HasTag(tag string) bool {
	return slices.Contains(b.Tags, tag)
}

// ErrNoQuestions matches every *ErrInsufficientQuestions via errors.Is.
var ErrNoQuestions = errors.New("not enough questions")

// ErrInsufficientQuestions is returned when neither the role nor the
// fallback yields QuestionsPerQuiz questions.
type ErrInsufficientQuestions struct {
	Role  string
	Found int
}

func (e *ErrInsufficientQuestions) Error() string {
	return fmt.Sprintf("could not find at least %d questions for the role: %s (found %d)",
		QuestionsPerQuiz, e.Role, e.Found)
}

func (e *ErrInsufficientQuestions) Is(target error) bool {
	return target == ErrNoQuestions
}

// Selector draws quizzes from a bank.
type Selector struct {
	bank []BankItem

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a Selector over bank using rng for shuffling.
// A nil rng is seeded from the clock.
func NewSelector(bank []BankItem, rng *rand.Rand) *Selector {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32|1))
	}
	return &Selector{bank: bank, rng: rng}
}

// Default returns a Selector over the built-in bank.
func Default() *Selector {
	return NewSelector(SeedBank(), nil)
}

// SeedBank returns a copy of the built-in question bank.
func SeedBank() []BankItem {
	return slices.Clone(seedBank)
}

// Select returns QuestionsPerQuiz distinct questions for role in random
// order.
//
// The role is trimmed and lower-cased, then matched against item tags. If
// fewer than QuestionsPerQuiz items match and the role contains
// "developer", the generic engineering pool is used instead, provided it is
// large enough.
func (s *Selector) Select(role string) ([]Question, error) {
	tag := normalizeRole(role)
	pool := s.withTag(tag)

	if len(pool) < QuestionsPerQuiz {
		if !strings.Contains(tag, fallbackTrigger) {
			return nil, &ErrInsufficientQuestions{Role: role, Found: len(pool)}
		}
		generic := s.withTag(fallbackTag)
		if len(generic) < QuestionsPerQuiz {
			return nil, &ErrInsufficientQuestions{Role: role, Found: len(pool)}
		}
		pool = generic
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	s.mu.Unlock()

	out := make([]Question, QuestionsPerQuiz)
	for i := range out {
		out[i] = Question{Text: pool[i].Text}
	}
	return out, nil
}

// Count returns how many bank items carry the role's tag.
func (s *Selector) Count(role string) int {
	return len(s.withTag(normalizeRole(role)))
}

// withTag returns a fresh slice of matching items; callers may reorder it.
func (s *Selector) withTag(tag string) []BankItem {
	var out []BankItem
	for _, item := range s.bank {
		if item.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
