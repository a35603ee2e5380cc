package validators

import (
	"encoding/json"
	"strings"

	"paper-catalog/models"
)

// ValidateAuthorPayload checks a raw author body. Only name is
// validated; email and affiliation are accepted as-is and default to
// null when absent.
func ValidateAuthorPayload(body []byte) (*models.AuthorInput, []string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		raw = map[string]json.RawMessage{}
	}

	name, ok := requiredString(raw, "name")
	if !ok {
		return nil, []string{"Name is required"}
	}

	return &models.AuthorInput{
		Name:        strings.TrimSpace(name),
		Email:       optionalString(raw, "email"),
		Affiliation: optionalString(raw, "affiliation"),
	}, nil
}
