// Package evaluation scores a completed skill quiz with an AI model and
// returns a strictly validated assessment.
package evaluation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Probability is the estimated chance of being invited to interview.
type Probability string

const (
	ProbabilityLow    Probability = "Low"
	ProbabilityMedium Probability = "Medium"
	ProbabilityHigh   Probability = "High"
)

// ParseProbability matches s case-insensitively against the three levels.
func ParseProbability(s string) (Probability, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ProbabilityLow, true
	case "medium":
		return ProbabilityMedium, true
	case "high":
		return ProbabilityHigh, true
	}
	return "", false
}

// Evaluation is the assessment returned for one quiz attempt.
type Evaluation struct {
	// Score is the overall percentage, 0-100.
	Score int `json:"score"`

	// Summary describes strengths and weaknesses.
	Summary string `json:"summary"`

	// ImprovementAreas lists specific topics to work on. May be empty.
	ImprovementAreas []string `json:"improvementAreas"`

	InterviewProbability Probability `json:"interviewProbability"`

	// SuggestedJobTitles lists other roles the candidate may fit. May be empty.
	SuggestedJobTitles []string `json:"suggestedJobTitles"`
}

// Config controls the Gateway.
type Config struct {
	// Timeout bounds a single evaluation, including provider retries.
	Timeout time.Duration

	// MaxTokens is the token budget for the response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended Gateway settings.
func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// NoAnswer replaces missing or blank answers in the prompt.
const NoAnswer = "No answer provided."

// ErrNoQuestions is returned when Evaluate is called without questions.
var ErrNoQuestions = errors.New("no questions to evaluate")

// ErrEvaluationService reports that the AI service could not be reached or
// refused the request, including timeouts.
type ErrEvaluationService struct {
	Err error
}

func (e *ErrEvaluationService) Error() string {
	return fmt.Sprintf("failed to evaluate answers, please try again: %v", e.Err)
}

func (e *ErrEvaluationService) Unwrap() error { return e.Err }

// ErrEvaluationParse reports a response that was not valid JSON or did not
// match the evaluation shape.
type ErrEvaluationParse struct {
	Content []byte
	Err     error
}

func (e *ErrEvaluationParse) Error() string {
	return fmt.Sprintf("invalid evaluation data received from the AI service: %v", e.Err)
}

func (e *ErrEvaluationParse) Unwrap() error { return e.Err }
