package repositories

import (
	"errors"

	"paper-catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id uint) (*models.Author, error)
	GetList(params models.AuthorListParams) ([]models.Author, int64, error)
	Update(author *models.Author) error
	Delete(id uint) error
	FindByIdentity(name string, email, affiliation *string) (*models.Author, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func orderedPapers(db *gorm.DB) *gorm.DB {
	return db.Order("papers.id ASC")
}

func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Omit(clause.Associations).Create(author).Error
}

func (r *authorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.Preload("Papers", orderedPapers).First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) GetList(params models.AuthorListParams) ([]models.Author, int64, error) {
	var authors []models.Author
	var total int64

	query := r.db.Model(&models.Author{})

	if params.Name != nil {
		query = query.Where("LOWER(authors.name) LIKE ?", containsPattern(*params.Name))
	}

	if params.Affiliation != nil {
		query = query.Where("LOWER(authors.affiliation) LIKE ?", containsPattern(*params.Affiliation))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Papers", orderedPapers).
		Order("authors.id ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&authors).Error

	return authors, total, err
}

func (r *authorRepository) Update(author *models.Author) error {
	return r.db.Omit(clause.Associations).Save(author).Error
}

func (r *authorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Author{}, id).Error
}

// FindByIdentity looks up an author by the exact identity tuple.
// A null email or affiliation only matches a stored NULL, never an
// empty string. When several records carry the same tuple the one with
// the lowest id wins. Returns nil without error when nothing matches.
func (r *authorRepository) FindByIdentity(name string, email, affiliation *string) (*models.Author, error) {
	query := r.db.Where("name = ?", name)

	if email != nil {
		query = query.Where("email = ?", *email)
	} else {
		query = query.Where("email IS NULL")
	}

	if affiliation != nil {
		query = query.Where("affiliation = ?", *affiliation)
	} else {
		query = query.Where("affiliation IS NULL")
	}

	var author models.Author
	err := query.Order("id ASC").First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}
