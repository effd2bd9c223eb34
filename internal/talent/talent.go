// Package talent produces employer shortlists. Candidates come from a fixed
// pool; there is no matching engine behind it.
package talent

import (
	"errors"
	"sort"
	"strings"
)

// ErrRoleRequired is returned for a blank job role.
var ErrRoleRequired = errors.New("Job role is required.")

// Candidate is a verified seeker shown to employers.
type Candidate struct {
	ID      string
	Name    string
	Role    string
	Score   int
	Summary string
}

var pool = []Candidate{
	{
		ID:      "c1",
		Name:    "Alex Doe",
		Score:   95,
		Summary: "Exceptional problem-solver with deep knowledge of React hooks and state management. Answers demonstrate a strong understanding of performance optimization and component architecture. A clear senior-level candidate.",
	},
	{
		ID:      "c2",
		Name:    "Brenda Smith",
		Score:   91,
		Summary: "Strong grasp of core JavaScript and React principles. Effectively explained complex topics like the virtual DOM. Shows great potential and a solid foundation for a mid-to-senior role.",
	},
	{
		ID:      "c3",
		Name:    "Charlie Brown",
		Score:   88,
		Summary: "Solid technical skills, particularly in API integration and asynchronous JavaScript. Could improve on explaining architectural choices, but clearly capable and experienced.",
	},
	{
		ID:      "c4",
		Name:    "Diana Prince",
		Score:   82,
		Summary: "Good understanding of UI/UX principles and CSS-in-JS. Answers were practical and user-focused. A strong contender for a frontend-focused role.",
	},
}

// Shortlist returns the candidate pool for role, best score first. Each
// candidate carries the requested role.
func Shortlist(role string) ([]Candidate, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, ErrRoleRequired
	}
	out := make([]Candidate, len(pool))
	for i, c := range pool {
		c.Role = role
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}
