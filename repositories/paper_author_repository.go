package repositories

import (
	"paper-catalog/models"

	"gorm.io/gorm"
)

// PaperAuthorRepository owns the paper<->author join rows.
type PaperAuthorRepository interface {
	Replace(paperID uint, authorIDs []uint) error
	DeleteByPaper(paperID uint) error
	DeleteByAuthor(authorID uint) error
	SoleAuthoredPaperIDs(authorID uint) ([]uint, error)
}

type paperAuthorRepository struct {
	db *gorm.DB
}

func NewPaperAuthorRepository(db *gorm.DB) PaperAuthorRepository {
	return &paperAuthorRepository{db: db}
}

// Replace drops every existing link of the paper and establishes the
// new set. Replacement, never merge.
func (r *paperAuthorRepository) Replace(paperID uint, authorIDs []uint) error {
	if err := r.DeleteByPaper(paperID); err != nil {
		return err
	}

	links := make([]models.PaperAuthor, 0, len(authorIDs))
	for _, authorID := range authorIDs {
		links = append(links, models.PaperAuthor{PaperID: paperID, AuthorID: authorID})
	}
	if len(links) == 0 {
		return nil
	}
	return r.db.Create(&links).Error
}

func (r *paperAuthorRepository) DeleteByPaper(paperID uint) error {
	return r.db.Where("paper_id = ?", paperID).Delete(&models.PaperAuthor{}).Error
}

func (r *paperAuthorRepository) DeleteByAuthor(authorID uint) error {
	return r.db.Where("author_id = ?", authorID).Delete(&models.PaperAuthor{}).Error
}

// SoleAuthoredPaperIDs returns the papers for which the author is the
// only linked author. Non-empty means the author cannot be deleted.
func (r *paperAuthorRepository) SoleAuthoredPaperIDs(authorID uint) ([]uint, error) {
	query := `
		SELECT pa.paper_id
		FROM paper_authors pa
		WHERE pa.author_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM paper_authors other
			WHERE other.paper_id = pa.paper_id
			  AND other.author_id <> ?
		  )
		ORDER BY pa.paper_id`

	var ids []uint
	err := r.db.Raw(query, authorID, authorID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
