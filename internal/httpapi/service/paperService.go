package service

import (
	"context"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/models"
	"paperhub/internal/httpapi/repository"
)

type PaperService interface {
	GetAll(ctx context.Context, filters dto.PaperFilters) ([]models.Paper, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Paper, error)
	Create(ctx context.Context, in dto.PaperInput) (*models.Paper, error)
	Update(ctx context.Context, id int64, in dto.PaperInput) (*models.Paper, error)
	Delete(ctx context.Context, id int64) error
}

type paperService struct {
	repo *repository.PaperRepo
}

func NewPaperService(r *repository.PaperRepo) PaperService {
	return &paperService{repo: r}
}

func (s *paperService) GetAll(ctx context.Context, filters dto.PaperFilters) ([]models.Paper, int64, error) {
	return s.repo.GetAll(ctx, filters)
}

func (s *paperService) GetByID(ctx context.Context, id int64) (*models.Paper, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *paperService) Create(ctx context.Context, in dto.PaperInput) (*models.Paper, error) {
	return s.repo.Create(ctx, in)
}

func (s *paperService) Update(ctx context.Context, id int64, in dto.PaperInput) (*models.Paper, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *paperService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
