package dto

import "paperhub/internal/httpapi/models"

// AuthorInput is the typed form of a validated author object, either from
// POST/PUT /api/authors or embedded in a paper body.
type AuthorInput struct {
	Name        string
	Email       *string
	Affiliation *string
}

// AuthorFilters carries the parsed query parameters of GET /api/authors.
type AuthorFilters struct {
	Name        string
	Affiliation string
	Limit       int
	Offset      int
}

// AuthorSummary is an author embedded in a paper response.
type AuthorSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	Affiliation *string `json:"affiliation"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// AuthorResponse is the wire shape of a single author with related papers.
type AuthorResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Email       *string        `json:"email"`
	Affiliation *string        `json:"affiliation"`
	Papers      []PaperSummary `json:"papers"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type AuthorListResponse struct {
	Authors []AuthorResponse `json:"authors"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

func AuthorInputFromPayload(payload map[string]any) AuthorInput {
	name, _ := payload["name"].(string)
	return AuthorInput{
		Name:        name,
		Email:       normalizeOptional(payload["email"]),
		Affiliation: normalizeOptional(payload["affiliation"]),
	}
}

func FromAuthorToSummary(a models.Author) AuthorSummary {
	return AuthorSummary{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Affiliation: a.Affiliation,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func FromAuthorToResponse(a models.Author) AuthorResponse {
	resp := AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Affiliation: a.Affiliation,
		Papers:      make([]PaperSummary, 0, len(a.Papers)),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
	for _, p := range a.Papers {
		resp.Papers = append(resp.Papers, FromPaperToSummary(p))
	}
	return resp
}
