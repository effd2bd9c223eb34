package evaluation

import (
	"fmt"
	"strings"

	"github.com/skillmatch/skillmatch/internal/quiz"
)

const systemPrompt = `You are an expert hiring manager and career coach. You evaluate skill quiz answers honestly and concisely, and you always respond with the requested JSON object only.`

// buildUserMessage renders the role and numbered question/answer pairs.
// The output depends only on its inputs.
func buildUserMessage(role string, pairs []qa) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are evaluating a candidate's skill quiz for a %q position. Here are the questions and the candidate's answers:\n\n", role)

	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Question %d: %s\nAnswer %d: %s", i+1, p.question, i+1, p.answer)
	}

	b.WriteString("\n\nBased on these answers, provide a comprehensive evaluation including:\n")
	b.WriteString("1. A percentage score (from 0 to 100).\n")
	b.WriteString("2. A brief summary of their strengths and potential weaknesses.\n")
	b.WriteString("3. A list of 2-3 specific areas for improvement.\n")
	b.WriteString("4. An estimated probability of getting an interview ('Low', 'Medium', 'High') based on this performance for this role.\n")
	b.WriteString("5. A list of 2-3 other job titles they might be a good fit for based on their demonstrated skills.")

	return b.String()
}

type qa struct {
	question string
	answer   string
}

// pairAnswers aligns answers to questions. Missing and blank answers
// become NoAnswer; surplus answers are dropped.
func pairAnswers(questions []quiz.Question, answers []string) []qa {
	out := make([]qa, len(questions))
	for i, q := range questions {
		a := NoAnswer
		if i < len(answers) && strings.TrimSpace(answers[i]) != "" {
			a = answers[i]
		}
		out[i] = qa{question: q.Text, answer: a}
	}
	return out
}
