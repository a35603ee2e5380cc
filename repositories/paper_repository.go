package repositories

import (
	"errors"
	"strings"

	"paper-catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaperRepository interface {
	Create(paper *models.Paper) error
	GetByID(id uint) (*models.Paper, error)
	GetList(params models.PaperListParams) ([]models.Paper, int64, error)
	Update(paper *models.Paper) error
	Delete(id uint) error
}

type paperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

// orderedAuthors keeps a paper's author collection deterministic:
// ascending by author id.
func orderedAuthors(db *gorm.DB) *gorm.DB {
	return db.Order("authors.id ASC")
}

func (r *paperRepository) Create(paper *models.Paper) error {
	// Links are owned by the relationship store, never autosaved here.
	return r.db.Omit(clause.Associations).Create(paper).Error
}

func (r *paperRepository) GetByID(id uint) (*models.Paper, error) {
	var paper models.Paper
	err := r.db.Preload("Authors", orderedAuthors).First(&paper, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPaperNotFound
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepository) GetList(params models.PaperListParams) ([]models.Paper, int64, error) {
	var papers []models.Paper
	var total int64

	query := r.db.Model(&models.Paper{})

	if params.Year != nil {
		query = query.Where("papers.year = ?", *params.Year)
	}

	if params.PublishedIn != nil {
		query = query.Where("LOWER(papers.published_in) LIKE ?", containsPattern(*params.PublishedIn))
	}

	// Each author term must independently match at least one linked
	// author name.
	for _, term := range params.Authors {
		query = query.Where(
			`EXISTS (
				SELECT 1 FROM paper_authors pa
				JOIN authors a ON a.id = pa.author_id
				WHERE pa.paper_id = papers.id AND LOWER(a.name) LIKE ?
			)`, containsPattern(term))
	}

	// Total reflects the full filtered set, not the returned page.
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Authors", orderedAuthors).
		Order("papers.id ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&papers).Error

	return papers, total, err
}

func (r *paperRepository) Update(paper *models.Paper) error {
	return r.db.Omit(clause.Associations).Save(paper).Error
}

func (r *paperRepository) Delete(id uint) error {
	return r.db.Delete(&models.Paper{}, id).Error
}

func containsPattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
