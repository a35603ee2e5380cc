package services

import (
	"paper-catalog/models"
	"paper-catalog/repositories"

	"gorm.io/gorm"
)

type PaperService interface {
	CreatePaper(input models.PaperInput) (*models.Paper, error)
	GetPaper(id uint) (*models.Paper, error)
	GetPapers(params models.PaperListParams) ([]models.Paper, int64, error)
	UpdatePaper(id uint, input models.PaperInput) (*models.Paper, error)
	DeletePaper(id uint) error
}

type paperService struct {
	db        *gorm.DB
	paperRepo repositories.PaperRepository
}

func NewPaperService(db *gorm.DB, paperRepo repositories.PaperRepository) PaperService {
	return &paperService{db: db, paperRepo: paperRepo}
}

func (s *paperService) CreatePaper(input models.PaperInput) (*models.Paper, error) {
	var paperID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		authorIDs, err := resolveAuthors(tx, input.Authors)
		if err != nil {
			return err
		}

		paper := &models.Paper{
			Title:       input.Title,
			PublishedIn: input.PublishedIn,
			Year:        input.Year,
		}
		if err := repositories.NewPaperRepository(tx).Create(paper); err != nil {
			return err
		}

		if err := repositories.NewPaperAuthorRepository(tx).Replace(paper.ID, authorIDs); err != nil {
			return err
		}

		paperID = paper.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.paperRepo.GetByID(paperID)
}

func (s *paperService) GetPaper(id uint) (*models.Paper, error) {
	return s.paperRepo.GetByID(id)
}

func (s *paperService) GetPapers(params models.PaperListParams) ([]models.Paper, int64, error) {
	return s.paperRepo.GetList(params)
}

// UpdatePaper rewrites the scalar fields and fully replaces the author
// set: old links are dropped, the new set is resolved and linked.
func (s *paperService) UpdatePaper(id uint, input models.PaperInput) (*models.Paper, error) {
	paper, err := s.paperRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		authorIDs, err := resolveAuthors(tx, input.Authors)
		if err != nil {
			return err
		}

		paper.Title = input.Title
		paper.PublishedIn = input.PublishedIn
		paper.Year = input.Year
		if err := repositories.NewPaperRepository(tx).Update(paper); err != nil {
			return err
		}

		return repositories.NewPaperAuthorRepository(tx).Replace(paper.ID, authorIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.paperRepo.GetByID(id)
}

// DeletePaper removes the paper and its links. Authors survive, as do
// their links to other papers.
func (s *paperService) DeletePaper(id uint) error {
	if _, err := s.paperRepo.GetByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPaperAuthorRepository(tx).DeleteByPaper(id); err != nil {
			return err
		}
		return repositories.NewPaperRepository(tx).Delete(id)
	})
}
