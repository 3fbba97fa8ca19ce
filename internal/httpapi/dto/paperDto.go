package dto

import (
	"encoding/json"
	"time"

	"paperhub/internal/httpapi/models"
)

// Timestamps are rendered in a fixed textual format rather than RFC 3339 so
// clients get a stable shape regardless of the store's precision.
const TimeFormat = "2006-01-02 15:04:05"

// PaperInput is the typed form of a validated POST/PUT body.
type PaperInput struct {
	Title       string
	PublishedIn string
	Year        int
	Authors     []AuthorInput
}

// PaperFilters carries the parsed query parameters of GET /api/papers.
// Authors holds every ?author= value; values are combined with AND.
type PaperFilters struct {
	Year        *int
	PublishedIn string
	Authors     []string
	Limit       int
	Offset      int
}

// PaperResponse is the wire shape of a single paper. Embedded authors carry
// no back-relation.
type PaperResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	PublishedIn string          `json:"publishedIn"`
	Year        int             `json:"year"`
	Authors     []AuthorSummary `json:"authors"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// PaperSummary is a paper embedded in an author response.
type PaperSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PublishedIn string `json:"publishedIn"`
	Year        int    `json:"year"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type PaperListResponse struct {
	Papers []PaperResponse `json:"papers"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// PaperInputFromPayload extracts a typed input from a payload that already
// passed validation. Empty optional author fields normalize to NULL.
func PaperInputFromPayload(payload map[string]any) PaperInput {
	in := PaperInput{
		Title:       payload["title"].(string),
		PublishedIn: payload["publishedIn"].(string),
	}
	if n, ok := payload["year"].(json.Number); ok {
		y, _ := n.Int64()
		in.Year = int(y)
	}
	authors, _ := payload["authors"].([]any)
	in.Authors = make([]AuthorInput, 0, len(authors))
	for _, a := range authors {
		obj, _ := a.(map[string]any)
		in.Authors = append(in.Authors, AuthorInputFromPayload(obj))
	}
	return in
}

func FromPaperToResponse(p models.Paper) PaperResponse {
	resp := PaperResponse{
		ID:          p.ID,
		Title:       p.Title,
		PublishedIn: p.PublishedIn,
		Year:        p.Year,
		Authors:     make([]AuthorSummary, 0, len(p.Authors)),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
	for _, a := range p.Authors {
		resp.Authors = append(resp.Authors, FromAuthorToSummary(a))
	}
	return resp
}

func FromPaperToSummary(p models.Paper) PaperSummary {
	return PaperSummary{
		ID:          p.ID,
		Title:       p.Title,
		PublishedIn: p.PublishedIn,
		Year:        p.Year,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// normalizeOptional maps absent, null and empty-string values to NULL so
// connect-or-create matching treats them alike.
func normalizeOptional(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}
