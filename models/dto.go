package models

import "time"

// PaperInput is the validated body of a paper create/update request.
type PaperInput struct {
	Title       string
	PublishedIn string
	Year        int
	Authors     []AuthorInput
}

// AuthorInput is a single author reference inside a paper body, or the
// validated body of an author create/update request. Email and
// affiliation are nil when absent or null in the request.
type AuthorInput struct {
	Name        string
	Email       *string
	Affiliation *string
}

// PaperListParams are the validated query parameters of GET /papers.
// Nil pointer filters are absent. Authors holds one entry per repeated
// author parameter; every entry must match (AND semantics).
type PaperListParams struct {
	Year        *int
	PublishedIn *string
	Authors     []string
	Limit       int
	Offset      int
}

// AuthorListParams are the validated query parameters of GET /authors.
type AuthorListParams struct {
	Name        *string
	Affiliation *string
	Limit       int
	Offset      int
}

type AuthorData struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email"`
	Affiliation *string   `json:"affiliation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PaperData struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	PublishedIn string    `json:"publishedIn"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PaperResponse struct {
	PaperData
	Authors []AuthorData `json:"authors"`
}

type AuthorResponse struct {
	AuthorData
	Papers []PaperData `json:"papers"`
}

type PaperListResponse struct {
	Papers []PaperResponse `json:"papers"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type AuthorListResponse struct {
	Authors []AuthorResponse `json:"authors"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

func (p *Paper) Data() PaperData {
	return PaperData{
		ID:          p.ID,
		Title:       p.Title,
		PublishedIn: p.PublishedIn,
		Year:        p.Year,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (a *Author) Data() AuthorData {
	return AuthorData{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Affiliation: a.Affiliation,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToResponse converts a paper with preloaded authors to its wire shape.
func (p *Paper) ToResponse() PaperResponse {
	authors := make([]AuthorData, 0, len(p.Authors))
	for i := range p.Authors {
		authors = append(authors, p.Authors[i].Data())
	}
	return PaperResponse{PaperData: p.Data(), Authors: authors}
}

// ToResponse converts an author with preloaded papers to its wire shape.
func (a *Author) ToResponse() AuthorResponse {
	papers := make([]PaperData, 0, len(a.Papers))
	for i := range a.Papers {
		papers = append(papers, a.Papers[i].Data())
	}
	return AuthorResponse{AuthorData: a.Data(), Papers: papers}
}

func PapersToResponse(papers []Paper) []PaperResponse {
	out := make([]PaperResponse, 0, len(papers))
	for i := range papers {
		out = append(out, papers[i].ToResponse())
	}
	return out
}

func AuthorsToResponse(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, authors[i].ToResponse())
	}
	return out
}
