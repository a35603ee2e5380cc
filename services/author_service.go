package services

import (
	"paper-catalog/models"
	"paper-catalog/repositories"

	"gorm.io/gorm"
)

type AuthorService interface {
	CreateAuthor(input models.AuthorInput) (*models.Author, error)
	GetAuthor(id uint) (*models.Author, error)
	GetAuthors(params models.AuthorListParams) ([]models.Author, int64, error)
	UpdateAuthor(id uint, input models.AuthorInput) (*models.Author, error)
	DeleteAuthor(id uint) error
}

type authorService struct {
	db         *gorm.DB
	authorRepo repositories.AuthorRepository
}

func NewAuthorService(db *gorm.DB, authorRepo repositories.AuthorRepository) AuthorService {
	return &authorService{db: db, authorRepo: authorRepo}
}

func (s *authorService) CreateAuthor(input models.AuthorInput) (*models.Author, error) {
	author := &models.Author{
		Name:        input.Name,
		Email:       input.Email,
		Affiliation: input.Affiliation,
	}
	if err := s.authorRepo.Create(author); err != nil {
		return nil, err
	}
	return s.authorRepo.GetByID(author.ID)
}

func (s *authorService) GetAuthor(id uint) (*models.Author, error) {
	return s.authorRepo.GetByID(id)
}

func (s *authorService) GetAuthors(params models.AuthorListParams) ([]models.Author, int64, error) {
	return s.authorRepo.GetList(params)
}

// UpdateAuthor mutates scalar fields only; paper links are never
// touched here.
func (s *authorService) UpdateAuthor(id uint, input models.AuthorInput) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	author.Name = input.Name
	author.Email = input.Email
	author.Affiliation = input.Affiliation
	author.Papers = nil

	if err := s.authorRepo.Update(author); err != nil {
		return nil, err
	}
	return s.authorRepo.GetByID(id)
}

// DeleteAuthor refuses to remove an author who is the sole author of
// any paper. Guard check and delete run in one transaction so a
// concurrent link cannot slip between them.
func (s *authorService) DeleteAuthor(id uint) error {
	if _, err := s.authorRepo.GetByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		linkRepo := repositories.NewPaperAuthorRepository(tx)

		soleAuthored, err := linkRepo.SoleAuthoredPaperIDs(id)
		if err != nil {
			return err
		}
		if len(soleAuthored) > 0 {
			return models.ErrSoleAuthor
		}

		if err := linkRepo.DeleteByAuthor(id); err != nil {
			return err
		}
		return repositories.NewAuthorRepository(tx).Delete(id)
	})
}
