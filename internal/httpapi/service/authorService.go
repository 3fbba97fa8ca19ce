package service

import (
	"context"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/models"
	"paperhub/internal/httpapi/repository"
)

type AuthorService interface {
	GetAll(ctx context.Context, filters dto.AuthorFilters) ([]models.Author, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, in dto.AuthorInput) (*models.Author, error)
	Update(ctx context.Context, id int64, in dto.AuthorInput) (*models.Author, error)
	Delete(ctx context.Context, id int64) error
}

type authorService struct {
	repo *repository.AuthorRepo
}

func NewAuthorService(r *repository.AuthorRepo) AuthorService {
	return &authorService{repo: r}
}

func (s *authorService) GetAll(ctx context.Context, filters dto.AuthorFilters) ([]models.Author, int64, error) {
	return s.repo.GetAll(ctx, filters)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, in dto.AuthorInput) (*models.Author, error) {
	return s.repo.Create(ctx, in)
}

func (s *authorService) Update(ctx context.Context, id int64, in dto.AuthorInput) (*models.Author, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
