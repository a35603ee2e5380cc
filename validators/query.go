package validators

import (
	"net/url"
	"strconv"
	"strings"

	"paper-catalog/models"
)

const (
	defaultLimit  = 10
	maxLimit      = 100
	defaultOffset = 0
)

// ParsePaperListParams validates GET /papers query parameters. The
// first invalid parameter aborts with models.ErrInvalidQuery. Empty
// values are treated as absent.
func ParsePaperListParams(values url.Values) (*models.PaperListParams, error) {
	limit, offset, err := parsePagination(values)
	if err != nil {
		return nil, err
	}
	params := &models.PaperListParams{Limit: limit, Offset: offset}

	if raw := values.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= 1900 {
			return nil, models.ErrInvalidQuery
		}
		params.Year = &year
	}

	// Whitespace-only venues are kept as literal filter values.
	if raw := values.Get("publishedIn"); raw != "" {
		params.PublishedIn = &raw
	}

	for _, raw := range values["author"] {
		if raw == "" {
			continue
		}
		if strings.TrimSpace(raw) == "" {
			return nil, models.ErrInvalidQuery
		}
		params.Authors = append(params.Authors, raw)
	}

	return params, nil
}

// ParseAuthorListParams validates GET /authors query parameters.
func ParseAuthorListParams(values url.Values) (*models.AuthorListParams, error) {
	limit, offset, err := parsePagination(values)
	if err != nil {
		return nil, err
	}
	params := &models.AuthorListParams{Limit: limit, Offset: offset}

	if raw := values.Get("name"); raw != "" {
		if strings.TrimSpace(raw) == "" {
			return nil, models.ErrInvalidQuery
		}
		params.Name = &raw
	}

	if raw := values.Get("affiliation"); raw != "" {
		if strings.TrimSpace(raw) == "" {
			return nil, models.ErrInvalidQuery
		}
		params.Affiliation = &raw
	}

	return params, nil
}

func parsePagination(values url.Values) (int, int, error) {
	limit := defaultLimit
	offset := defaultOffset

	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			return 0, 0, models.ErrInvalidQuery
		}
		limit = n
	}

	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, models.ErrInvalidQuery
		}
		offset = n
	}

	return limit, offset, nil
}

// ParseID validates a path id: a plain positive integer with no
// fractional part or stray characters.
func ParseID(raw string) (uint, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, models.ErrInvalidID
	}
	return uint(n), nil
}
