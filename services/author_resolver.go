package services

import (
	"paper-catalog/models"
	"paper-catalog/repositories"

	"gorm.io/gorm"
)

// resolveAuthors maps each candidate to an existing author with the
// identical identity tuple (name, email, affiliation) or creates one.
// Ties between duplicate records go to the lowest id. Runs on the
// caller's transaction so the resolution and the paper write commit
// together. Duplicate candidates within one request collapse to a
// single id; order of first appearance is kept.
func resolveAuthors(tx *gorm.DB, candidates []models.AuthorInput) ([]uint, error) {
	authorRepo := repositories.NewAuthorRepository(tx)

	ids := make([]uint, 0, len(candidates))
	seen := make(map[uint]bool, len(candidates))

	for _, candidate := range candidates {
		author, err := authorRepo.FindByIdentity(candidate.Name, candidate.Email, candidate.Affiliation)
		if err != nil {
			return nil, err
		}
		if author == nil {
			author = &models.Author{
				Name:        candidate.Name,
				Email:       candidate.Email,
				Affiliation: candidate.Affiliation,
			}
			if err := authorRepo.Create(author); err != nil {
				return nil, err
			}
		}
		if !seen[author.ID] {
			seen[author.ID] = true
			ids = append(ids, author.ID)
		}
	}

	return ids, nil
}
