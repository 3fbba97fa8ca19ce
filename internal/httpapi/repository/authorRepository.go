package repository

import (
	"context"
	"errors"
	"fmt"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo {
	return &AuthorRepo{db: db}
}

func (r *AuthorRepo) Create(ctx context.Context, in dto.AuthorInput) (*models.Author, error) {
	a := models.Author{
		Name:        in.Name,
		Email:       in.Email,
		Affiliation: in.Affiliation,
	}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return r.GetByID(ctx, a.ID)
}

// GetAll returns the filtered page ordered by id ascending together with the
// total count before pagination.
func (r *AuthorRepo) GetAll(ctx context.Context, f dto.AuthorFilters) ([]models.Author, int64, error) {
	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Author{})
		if f.Name != "" {
			q = q.Where("LOWER(name) LIKE ?", containsPattern(f.Name))
		}
		if f.Affiliation != "" {
			q = q.Where("LOWER(affiliation) LIKE ?", containsPattern(f.Affiliation))
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	var list []models.Author
	if err := filtered().
		Preload("Papers", orderByID).
		Order("authors.id asc").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	return list, total, nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	err := r.db.WithContext(ctx).Preload("Papers", orderByID).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	return &a, nil
}

func (r *AuthorRepo) Update(ctx context.Context, id int64, in dto.AuthorInput) (*models.Author, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a models.Author
		if err := tx.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrAuthorNotFound
			}
			return fmt.Errorf("get author: %w", err)
		}
		// map form so cleared optional fields become NULL
		updates := map[string]any{
			"name":        in.Name,
			"email":       in.Email,
			"affiliation": in.Affiliation,
		}
		if err := tx.Model(&a).Updates(updates).Error; err != nil {
			return fmt.Errorf("update author: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete refuses to remove an author who is the sole author of any paper,
// otherwise removes the author row and its join rows. Papers are never
// cascaded.
func (r *AuthorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a models.Author
		err := tx.Preload("Papers.Authors").First(&a, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrAuthorNotFound
		}
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}
		for _, p := range a.Papers {
			if len(p.Authors) == 1 {
				return models.ErrSoleAuthorPaper
			}
		}
		if err := tx.Select(clause.Associations).Delete(&a).Error; err != nil {
			return fmt.Errorf("delete author: %w", err)
		}
		return nil
	})
}
