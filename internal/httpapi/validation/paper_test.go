package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"paperhub/internal/httpapi/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors how handlers read request bodies: loosely typed with
// json.Number preserved.
func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	payload := map[string]any{}
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&payload))
	return payload
}

func TestValidatePaperPayload_Valid(t *testing.T) {
	payload := decode(t, `{
		"title": "Sample Paper Title",
		"publishedIn": "ICSE 2024",
		"year": 2024,
		"authors": [
			{"name": "John Doe", "email": "john@mail.utoronto.ca", "affiliation": "University of Toronto"},
			{"name": "Jane Smith", "email": null}
		]
	}`)

	assert.Empty(t, validation.ValidatePaperPayload(payload))
}

func TestValidatePaperPayload_EmptyBody(t *testing.T) {
	errs := validation.ValidatePaperPayload(decode(t, `{}`))

	assert.Equal(t, []string{
		"Title is required",
		"Published venue is required",
		"Published year is required",
		"At least one author is required",
	}, errs)
}

func TestValidatePaperPayload_Title(t *testing.T) {
	cases := map[string]string{
		"missing":    `{"publishedIn":"V","year":2024,"authors":[{"name":"A"}]}`,
		"empty":      `{"title":"","publishedIn":"V","year":2024,"authors":[{"name":"A"}]}`,
		"whitespace": `{"title":"   ","publishedIn":"V","year":2024,"authors":[{"name":"A"}]}`,
		"non-string": `{"title":42,"publishedIn":"V","year":2024,"authors":[{"name":"A"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			errs := validation.ValidatePaperPayload(decode(t, body))
			assert.Equal(t, []string{"Title is required"}, errs)
		})
	}
}

func TestValidatePaperPayload_Year(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing", `{"title":"T","publishedIn":"V","authors":[{"name":"A"}]}`, "Published year is required"},
		{"null", `{"title":"T","publishedIn":"V","year":null,"authors":[{"name":"A"}]}`, "Published year is required"},
		{"empty string", `{"title":"T","publishedIn":"V","year":"","authors":[{"name":"A"}]}`, "Published year is required"},
		{"string year", `{"title":"T","publishedIn":"V","year":"2024","authors":[{"name":"A"}]}`, "Valid year after 1900 is required"},
		{"exactly 1900", `{"title":"T","publishedIn":"V","year":1900,"authors":[{"name":"A"}]}`, "Valid year after 1900 is required"},
		{"below 1900", `{"title":"T","publishedIn":"V","year":1850,"authors":[{"name":"A"}]}`, "Valid year after 1900 is required"},
		{"fractional", `{"title":"T","publishedIn":"V","year":1901.5,"authors":[{"name":"A"}]}`, "Valid year after 1900 is required"},
		{"boolean", `{"title":"T","publishedIn":"V","year":true,"authors":[{"name":"A"}]}`, "Valid year after 1900 is required"},
		{"in the future", `{"title":"T","publishedIn":"V","year":2026,"authors":[{"name":"A"}]}`, "Year cannot be in the future"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validation.ValidatePaperPayload(decode(t, tc.body))
			assert.Equal(t, []string{tc.want}, errs)
		})
	}

	t.Run("boundary years accepted", func(t *testing.T) {
		for _, body := range []string{
			`{"title":"T","publishedIn":"V","year":1901,"authors":[{"name":"A"}]}`,
			`{"title":"T","publishedIn":"V","year":2025,"authors":[{"name":"A"}]}`,
		} {
			assert.Empty(t, validation.ValidatePaperPayload(decode(t, body)))
		}
	})
}

func TestValidatePaperPayload_Authors(t *testing.T) {
	t.Run("missing array", func(t *testing.T) {
		errs := validation.ValidatePaperPayload(decode(t, `{"title":"T","publishedIn":"V","year":2024}`))
		assert.Equal(t, []string{"At least one author is required"}, errs)
	})

	t.Run("empty array", func(t *testing.T) {
		errs := validation.ValidatePaperPayload(decode(t, `{"title":"T","publishedIn":"V","year":2024,"authors":[]}`))
		assert.Equal(t, []string{"At least one author is required"}, errs)
	})

	t.Run("not an array", func(t *testing.T) {
		errs := validation.ValidatePaperPayload(decode(t, `{"title":"T","publishedIn":"V","year":2024,"authors":"John"}`))
		assert.Equal(t, []string{"At least one author is required"}, errs)
	})

	t.Run("single missing name message plus per-author detail", func(t *testing.T) {
		errs := validation.ValidatePaperPayload(decode(t, `{
			"title":"T","publishedIn":"V","year":2024,
			"authors":[{"name":""},{"email":"x@y.z"},{"name":"Ok"}]
		}`))
		assert.Equal(t, []string{
			"Author name is required",
			"Author 1: Name is required",
			"Author 2: Name is required",
		}, errs)
	})

	t.Run("author detail errors joined by comma", func(t *testing.T) {
		errs := validation.ValidatePaperPayload(decode(t, `{
			"title":"T","publishedIn":"V","year":2024,
			"authors":[{"name":"A"},{"name":"","email":5,"affiliation":7}]
		}`))
		assert.Equal(t, []string{
			"Author name is required",
			"Author 2: Name is required, Email must be a string, Affiliation must be a string",
		}, errs)
	})
}

func TestValidatePaperPayload_MessageOrder(t *testing.T) {
	errs := validation.ValidatePaperPayload(decode(t, `{"year":1899,"authors":[]}`))
	assert.Equal(t, []string{
		"Title is required",
		"Published venue is required",
		"Valid year after 1900 is required",
		"At least one author is required",
	}, errs)
}
