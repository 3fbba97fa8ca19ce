package validation

// ValidateAuthorPayload checks a decoded author object. Name is required,
// email and affiliation are optional but must be strings when present.
func ValidateAuthorPayload(payload map[string]any) []string {
	errs := []string{}

	if !isNonEmptyString(payload["name"]) {
		errs = append(errs, "Name is required")
	}
	if v, ok := payload["email"]; ok && v != nil {
		if _, isStr := v.(string); !isStr {
			errs = append(errs, "Email must be a string")
		}
	}
	if v, ok := payload["affiliation"]; ok && v != nil {
		if _, isStr := v.(string); !isStr {
			errs = append(errs, "Affiliation must be a string")
		}
	}
	return errs
}
