package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/skillmatch/skillmatch/internal/llm"
	"github.com/skillmatch/skillmatch/internal/quiz"
)

// Purpose labels evaluation calls in the LLM event log.
const Purpose = "evaluation"

// Evaluator scores a quiz attempt.
type Evaluator interface {
	Evaluate(ctx context.Context, role string, questions []quiz.Question, answers []string) (*Evaluation, error)
}

// Gateway implements Evaluator on an LLM provider.
type Gateway struct {
	provider llm.Provider
	config   Config
}

// New creates a Gateway with the given provider and config.
func New(provider llm.Provider, cfg Config) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Gateway{provider: provider, config: cfg}
}

// evaluationOutput is the raw response. Pointers distinguish absent and
// null fields from zero values.
type evaluationOutput struct {
	Score                *float64  `json:"score"`
	Summary              *string   `json:"summary"`
	ImprovementAreas     *[]string `json:"improvementAreas"`
	InterviewProbability *string   `json:"interviewProbability"`
	SuggestedJobTitles   *[]string `json:"suggestedJobTitles"`
}

// Evaluate sends the role and question/answer pairs to the provider and
// returns the validated evaluation.
//
// Provider, transport and timeout failures return *ErrEvaluationService.
// Responses that are not JSON or do not match EvaluationSchema return
// *ErrEvaluationParse.
func (g *Gateway) Evaluate(ctx context.Context, role string, questions []quiz.Question, answers []string) (*Evaluation, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Prompt(systemPrompt, buildUserMessage(role, pairAnswers(questions, answers)), EvaluationSchema)
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	return decode(resp.Content)
}

// classify maps provider errors onto the gateway's two error kinds.
func classify(err error) error {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return &ErrEvaluationParse{Content: invalid.Content, Err: err}
	}
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return &ErrEvaluationParse{Content: truncated.Content, Err: err}
	}
	return &ErrEvaluationService{Err: err}
}

// decode validates content against EvaluationSchema and converts it.
func decode(content json.RawMessage) (*Evaluation, error) {
	if err := llm.ValidateResponse(EvaluationSchema, content); err != nil {
		return nil, &ErrEvaluationParse{Content: content, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var raw evaluationOutput
	if err := dec.Decode(&raw); err != nil {
		return nil, &ErrEvaluationParse{Content: content, Err: err}
	}

	ev, err := raw.toEvaluation()
	if err != nil {
		return nil, &ErrEvaluationParse{Content: content, Err: err}
	}
	return ev, nil
}

func (o evaluationOutput) toEvaluation() (*Evaluation, error) {
	var missing []string
	if o.Score == nil {
		missing = append(missing, "score")
	}
	if o.Summary == nil {
		missing = append(missing, "summary")
	}
	if o.ImprovementAreas == nil {
		missing = append(missing, "improvementAreas")
	}
	if o.InterviewProbability == nil {
		missing = append(missing, "interviewProbability")
	}
	if o.SuggestedJobTitles == nil {
		missing = append(missing, "suggestedJobTitles")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	score := *o.Score
	if math.IsNaN(score) || score < 0 || score > 100 {
		return nil, fmt.Errorf("score %v out of range 0-100", score)
	}

	prob, ok := ParseProbability(*o.InterviewProbability)
	if !ok {
		return nil, fmt.Errorf("interviewProbability %q is not Low, Medium or High", *o.InterviewProbability)
	}

	return &Evaluation{
		Score:                int(math.Round(score)),
		Summary:              *o.Summary,
		ImprovementAreas:     *o.ImprovementAreas,
		InterviewProbability: prob,
		SuggestedJobTitles:   *o.SuggestedJobTitles,
	}, nil
}

// Unavailable returns an Evaluator that fails every call with
// *ErrEvaluationService wrapping cause. It stands in when no provider could
// be configured so the rest of the app still runs.
func Unavailable(cause error) Evaluator {
	return unavailable{cause: cause}
}

type unavailable struct{ cause error }

func (u unavailable) Evaluate(context.Context, string, []quiz.Question, []string) (*Evaluation, error) {
	return nil, &ErrEvaluationService{Err: u.cause}
}
