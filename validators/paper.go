package validators

import (
	"encoding/json"
	"math"
	"strings"

	"paper-catalog/models"
)

// ValidatePaperPayload checks a raw paper body and returns either the
// parsed input or the full ordered list of violation messages. All
// field violations are collected; only the per-author name check stops
// at the first offending author.
func ValidatePaperPayload(body []byte) (*models.PaperInput, []string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		raw = map[string]json.RawMessage{}
	}

	input := &models.PaperInput{}
	var messages []string

	if title, ok := requiredString(raw, "title"); ok {
		input.Title = title
	} else {
		messages = append(messages, "Title is required")
	}

	if venue, ok := requiredString(raw, "publishedIn"); ok {
		input.PublishedIn = venue
	} else {
		messages = append(messages, "Published venue is required")
	}

	if year, present := raw["year"]; !present || isNull(year) {
		messages = append(messages, "Published year is required")
	} else if n, ok := integerValue(year); ok && n > 1900 {
		input.Year = n
	} else {
		messages = append(messages, "Valid year after 1900 is required")
	}

	authors, msg := validateAuthorsList(raw["authors"])
	if msg != "" {
		messages = append(messages, msg)
	} else {
		input.Authors = authors
	}

	if len(messages) > 0 {
		return nil, messages
	}
	return input, nil
}

// validateAuthorsList returns the parsed author references, or the
// single message describing the first violation. Email and affiliation
// are never validated.
func validateAuthorsList(raw json.RawMessage) ([]models.AuthorInput, string) {
	if raw == nil || isNull(raw) {
		return nil, "At least one author is required"
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil, "At least one author is required"
	}

	authors := make([]models.AuthorInput, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, "Author name is required"
		}
		name, ok := requiredString(fields, "name")
		if !ok {
			return nil, "Author name is required"
		}
		authors = append(authors, models.AuthorInput{
			Name:        strings.TrimSpace(name),
			Email:       optionalString(fields, "email"),
			Affiliation: optionalString(fields, "affiliation"),
		})
	}
	return authors, ""
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// requiredString extracts a field that must be a JSON string and
// non-blank after trimming. Missing, null, non-string, and blank
// values all fail.
func requiredString(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, present := fields[key]
	if !present || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// optionalString extracts a field that is stored verbatim, nil when
// absent or null. Non-string JSON values are kept as their raw text.
func optionalString(fields map[string]json.RawMessage, key string) *string {
	raw, present := fields[key]
	if !present || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	return &s
}

// integerValue reports whether raw is a JSON number with no fractional
// part. 1999.0 counts as the integer 1999; "1999" does not.
func integerValue(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
