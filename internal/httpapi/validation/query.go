package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"paperhub/internal/httpapi/dto"
)

const (
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultOffset = 0
)

// ErrInvalidQuery collapses every query-parameter failure into one signal.
// Handlers map it to the generic invalid-query-parameter response.
var ErrInvalidQuery = errors.New("invalid query parameter format")

// ParsePaperListQuery validates and parses the recognized parameters of
// GET /api/papers. Unknown parameters are ignored.
func ParsePaperListQuery(values url.Values) (dto.PaperFilters, error) {
	filters := dto.PaperFilters{Limit: DefaultLimit, Offset: DefaultOffset}

	if raw, ok := queryValue(values, "year"); ok {
		year, err := strictInt(raw)
		if err != nil || year <= MinYear || year >= MaxYear {
			return filters, ErrInvalidQuery
		}
		filters.Year = &year
	}
	if raw, ok := queryValue(values, "publishedIn"); ok {
		if strings.TrimSpace(raw) == "" {
			return filters, ErrInvalidQuery
		}
		filters.PublishedIn = raw
	}
	for _, raw := range values["author"] {
		if strings.TrimSpace(raw) == "" {
			return filters, ErrInvalidQuery
		}
		filters.Authors = append(filters.Authors, raw)
	}

	var err error
	if filters.Limit, filters.Offset, err = parsePagination(values); err != nil {
		return filters, err
	}
	return filters, nil
}

// ParseAuthorListQuery validates and parses the recognized parameters of
// GET /api/authors.
func ParseAuthorListQuery(values url.Values) (dto.AuthorFilters, error) {
	filters := dto.AuthorFilters{Limit: DefaultLimit, Offset: DefaultOffset}

	if raw, ok := queryValue(values, "name"); ok {
		if strings.TrimSpace(raw) == "" {
			return filters, ErrInvalidQuery
		}
		filters.Name = raw
	}
	if raw, ok := queryValue(values, "affiliation"); ok {
		if strings.TrimSpace(raw) == "" {
			return filters, ErrInvalidQuery
		}
		filters.Affiliation = raw
	}

	var err error
	if filters.Limit, filters.Offset, err = parsePagination(values); err != nil {
		return filters, err
	}
	return filters, nil
}

func parsePagination(values url.Values) (limit, offset int, err error) {
	limit, offset = DefaultLimit, DefaultOffset

	if raw, ok := queryValue(values, "limit"); ok {
		limit, err = strictInt(raw)
		if err != nil || limit <= 0 || limit > MaxLimit {
			return 0, 0, ErrInvalidQuery
		}
	}
	if raw, ok := queryValue(values, "offset"); ok {
		offset, err = strictInt(raw)
		if err != nil || offset < 0 {
			return 0, 0, ErrInvalidQuery
		}
	}
	return limit, offset, nil
}

// strictInt rejects anything but a plain base-10 integer, so "1901a" and
// "19.01" never truncate into a valid value.
func strictInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func queryValue(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
