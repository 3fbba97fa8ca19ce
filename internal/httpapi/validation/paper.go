package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Year bounds for paper records. The lower bound is exclusive, the upper
// bound rejects future years.
const (
	MinYear = 1900
	MaxYear = 2026
)

// ValidatePaperPayload checks a decoded JSON body against the paper field
// rules and returns the violation messages in a fixed order. The payload must
// come from a decoder with UseNumber so that numeric types are preserved.
// An empty slice means the payload is acceptable.
func ValidatePaperPayload(payload map[string]any) []string {
	errs := []string{}

	if !isNonEmptyString(payload["title"]) {
		errs = append(errs, "Title is required")
	}
	if !isNonEmptyString(payload["publishedIn"]) {
		errs = append(errs, "Published venue is required")
	}

	errs = append(errs, validateYear(payload["year"])...)

	authors, ok := payload["authors"].([]any)
	if !ok || len(authors) == 0 {
		errs = append(errs, "At least one author is required")
		return errs
	}

	missingName := false
	for _, a := range authors {
		obj, _ := a.(map[string]any)
		if !isNonEmptyString(obj["name"]) {
			missingName = true
			break
		}
	}
	if missingName {
		errs = append(errs, "Author name is required")
	}
	for i, a := range authors {
		obj, _ := a.(map[string]any)
		if sub := ValidateAuthorPayload(obj); len(sub) > 0 {
			errs = append(errs, fmt.Sprintf("Author %d: %s", i+1, strings.Join(sub, ", ")))
		}
	}
	return errs
}

func validateYear(v any) []string {
	switch y := v.(type) {
	case nil:
		return []string{"Published year is required"}
	case string:
		// a string year is only "missing" when blank, otherwise it is the
		// wrong type and falls through to the range message
		if strings.TrimSpace(y) == "" {
			return []string{"Published year is required"}
		}
		return []string{"Valid year after 1900 is required"}
	case json.Number:
		n, err := strconv.ParseInt(y.String(), 10, 64)
		if err != nil || n <= MinYear {
			return []string{"Valid year after 1900 is required"}
		}
		if n >= MaxYear {
			return []string{"Year cannot be in the future"}
		}
		return nil
	default:
		return []string{"Valid year after 1900 is required"}
	}
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}
