package questions

import (
	"fmt"
	"strings"
)

// Validate checks the built-in catalog for structural problems.
func Validate() error {
	return validateQuestions(catalog)
}

// validateQuestions returns a combined error describing every problem found,
// or nil if the set is usable.
func validateQuestions(qs []Question) error {
	var errs []string

	if len(qs) == 0 {
		errs = append(errs, "catalog is empty")
	}

	ids := make(map[string]bool, len(qs))
	texts := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %q has no ID", q.Text))
		} else if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty text", q.ID))
		} else if texts[q.Text] {
			errs = append(errs, fmt.Sprintf("duplicate question text: %q", q.Text))
		}
		texts[q.Text] = true

		if len(q.Keywords) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no keywords", q.ID))
		}
		for _, kw := range q.Keywords {
			if kw == "" || strings.ContainsAny(kw, " \t\n") {
				errs = append(errs, fmt.Sprintf("question %q: keyword %q must be a single word", q.ID, kw))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
