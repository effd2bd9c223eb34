package assessment

import (
	"sync"
	"time"
)

// Scorecard summarizes one finished attempt.
type Scorecard struct {
	Role  string
	Score int
	Date  time.Time
}

// Board holds the scorecards of the current run, newest first. It is not
// persisted.
type Board struct {
	mu    sync.Mutex
	cards []Scorecard
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{}
}

// Add prepends a scorecard.
func (b *Board) Add(role string, score int, at time.Time) Scorecard {
	b.mu.Lock()
	defer b.mu.Unlock()
	sc := Scorecard{Role: role, Score: score, Date: at}
	b.cards = append([]Scorecard{sc}, b.cards...)
	return sc
}

// All returns the scorecards, newest first.
func (b *Board) All() []Scorecard {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Scorecard(nil), b.cards...)
}

// Clear removes every scorecard.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cards = nil
}
