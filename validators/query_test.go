package validators

import (
	"net/url"
	"testing"

	"paper-catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestParsePaperListParamsDefaults(t *testing.T) {
	params, err := ParsePaperListParams(url.Values{})

	assert.NoError(t, err)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 0, params.Offset)
	assert.Nil(t, params.Year)
	assert.Nil(t, params.PublishedIn)
	assert.Empty(t, params.Authors)
}

func TestParsePaperListParamsPagination(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		valid  bool
		limit  int
		offset int
	}{
		{"in range", "limit=100&offset=5", true, 100, 5},
		{"lower bound", "limit=1", true, 1, 0},
		{"limit zero", "limit=0", false, 0, 0},
		{"limit over max", "limit=101", false, 0, 0},
		{"limit not a number", "limit=abc", false, 0, 0},
		{"negative offset", "offset=-1", false, 0, 0},
		{"empty values are absent", "limit=&offset=", true, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			params, err := ParsePaperListParams(values)
			if !tt.valid {
				assert.ErrorIs(t, err, models.ErrInvalidQuery)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, tt.offset, params.Offset)
		})
	}
}

func TestParsePaperListParamsFilters(t *testing.T) {
	values, _ := url.ParseQuery("year=2020&publishedIn=NeurIPS&author=john&author=charlie")

	params, err := ParsePaperListParams(values)

	assert.NoError(t, err)
	assert.Equal(t, 2020, *params.Year)
	assert.Equal(t, "NeurIPS", *params.PublishedIn)
	assert.Equal(t, []string{"john", "charlie"}, params.Authors)
}

func TestParsePaperListParamsYearBoundary(t *testing.T) {
	values, _ := url.ParseQuery("year=1900")
	_, err := ParsePaperListParams(values)
	assert.ErrorIs(t, err, models.ErrInvalidQuery)

	values, _ = url.ParseQuery("year=1901")
	params, err := ParsePaperListParams(values)
	assert.NoError(t, err)
	assert.Equal(t, 1901, *params.Year)
}

// Whitespace-only venues are literal filter values; whitespace-only
// author terms are rejected.
func TestParsePaperListParamsWhitespaceHandling(t *testing.T) {
	values, _ := url.ParseQuery("publishedIn=%20%20")
	params, err := ParsePaperListParams(values)
	assert.NoError(t, err)
	assert.Equal(t, "  ", *params.PublishedIn)

	values, _ = url.ParseQuery("author=%20")
	_, err = ParsePaperListParams(values)
	assert.ErrorIs(t, err, models.ErrInvalidQuery)
}

func TestParseAuthorListParams(t *testing.T) {
	values, _ := url.ParseQuery("name=doe&affiliation=mit&limit=50&offset=2")

	params, err := ParseAuthorListParams(values)

	assert.NoError(t, err)
	assert.Equal(t, "doe", *params.Name)
	assert.Equal(t, "mit", *params.Affiliation)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, 2, params.Offset)
}

func TestParseAuthorListParamsBlankFilters(t *testing.T) {
	values, _ := url.ParseQuery("name=%20%20")
	_, err := ParseAuthorListParams(values)
	assert.ErrorIs(t, err, models.ErrInvalidQuery)

	values, _ = url.ParseQuery("affiliation=%09")
	_, err = ParseAuthorListParams(values)
	assert.ErrorIs(t, err, models.ErrInvalidQuery)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw   string
		id    uint
		valid bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"3.14", 0, false},
		{"1aaa", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseID(tt.raw)
			if !tt.valid {
				assert.ErrorIs(t, err, models.ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}
