package quiz

import (
	"fmt"
	"strings"
)

// Validate checks the built-in bank.
func Validate() error {
	return validateBank(seedBank, CatalogTags())
}

// validateBank performs all structural checks on the given bank.
// Returns a combined error describing all problems found, or nil if valid.
// Every tag in required must have at least QuestionsPerQuiz items.
func validateBank(bank []BankItem, required []string) error {
	var errs []string

	seen := make(map[string]bool, len(bank))
	counts := make(map[string]int)

	for i, item := range bank {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			errs = append(errs, fmt.Sprintf("item %d has empty text", i))
		}
		if seen[text] {
			errs = append(errs, fmt.Sprintf("duplicate question: %q", text))
		}
		seen[text] = true

		if len(item.Tags) == 0 {
			errs = append(errs, fmt.Sprintf("item %d has no tags", i))
		}
		for _, tag := range item.Tags {
			if tag != strings.ToLower(strings.TrimSpace(tag)) {
				errs = append(errs, fmt.Sprintf("item %d tag %q is not normalized", i, tag))
			}
			counts[tag]++
		}
	}

	for _, tag := range required {
		if counts[tag] < QuestionsPerQuiz {
			errs = append(errs, fmt.Sprintf("tag %q has %d questions, need %d", tag, counts[tag], QuestionsPerQuiz))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
