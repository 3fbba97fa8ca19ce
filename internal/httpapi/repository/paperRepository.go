package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaperRepo struct {
	db *gorm.DB
}

func NewPaperRepo(db *gorm.DB) *PaperRepo {
	return &PaperRepo{db: db}
}

// Create resolves each embedded author (connect-or-create), creates the paper
// and connects the resolved set, all in one transaction. The returned paper
// has its authors populated ordered by id.
func (r *PaperRepo) Create(ctx context.Context, in dto.PaperInput) (*models.Paper, error) {
	var paperID int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authors, err := resolveAuthors(tx, in.Authors)
		if err != nil {
			return err
		}
		p := models.Paper{
			Title:       in.Title,
			PublishedIn: in.PublishedIn,
			Year:        in.Year,
		}
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("create paper: %w", err)
		}
		refs := authorRefs(authors)
		if err := tx.Model(&p).Association("Authors").Append(&refs); err != nil {
			return fmt.Errorf("connect authors: %w", err)
		}
		paperID = p.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, paperID)
}

// GetAll returns the filtered page ordered by id ascending together with the
// total count before pagination.
func (r *PaperRepo) GetAll(ctx context.Context, f dto.PaperFilters) ([]models.Paper, int64, error) {
	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Paper{})
		if f.Year != nil {
			q = q.Where("year = ?", *f.Year)
		}
		if f.PublishedIn != "" {
			q = q.Where("LOWER(published_in) LIKE ?", containsPattern(f.PublishedIn))
		}
		// every author filter value must match some author of the paper
		for _, name := range f.Authors {
			q = q.Where(
				"EXISTS (SELECT 1 FROM paper_authors pa JOIN authors a ON a.id = pa.author_id WHERE pa.paper_id = papers.id AND LOWER(a.name) LIKE ?)",
				containsPattern(name),
			)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count papers: %w", err)
	}

	var list []models.Paper
	if err := filtered().
		Preload("Authors", orderByID).
		Order("papers.id asc").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list papers: %w", err)
	}
	return list, total, nil
}

func (r *PaperRepo) GetByID(ctx context.Context, id int64) (*models.Paper, error) {
	var p models.Paper
	err := r.db.WithContext(ctx).Preload("Authors", orderByID).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPaperNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get paper: %w", err)
	}
	return &p, nil
}

// Update replaces the scalar fields and the full author set. Old associations
// are cleared, the newly resolved set is connected.
func (r *PaperRepo) Update(ctx context.Context, id int64, in dto.PaperInput) (*models.Paper, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Paper
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPaperNotFound
			}
			return fmt.Errorf("get paper: %w", err)
		}
		authors, err := resolveAuthors(tx, in.Authors)
		if err != nil {
			return err
		}
		updates := map[string]any{
			"title":        in.Title,
			"published_in": in.PublishedIn,
			"year":         in.Year,
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return fmt.Errorf("update paper: %w", err)
		}
		refs := authorRefs(authors)
		if err := tx.Model(&p).Association("Authors").Replace(&refs); err != nil {
			return fmt.Errorf("replace authors: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the paper and its join rows. Authors are never cascaded.
func (r *PaperRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Paper
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPaperNotFound
			}
			return fmt.Errorf("get paper: %w", err)
		}
		if err := tx.Select(clause.Associations).Delete(&p).Error; err != nil {
			return fmt.Errorf("delete paper: %w", err)
		}
		return nil
	})
}

// resolveAuthors implements connect-or-create: each input reuses the existing
// author with an exact (name, email-or-null, affiliation-or-null) match,
// lowest id first, or creates a new one. The result is deduplicated and
// sorted by id.
func resolveAuthors(tx *gorm.DB, inputs []dto.AuthorInput) ([]models.Author, error) {
	seen := make(map[int64]bool, len(inputs))
	resolved := make([]models.Author, 0, len(inputs))
	for _, in := range inputs {
		a, err := findOrCreateAuthor(tx, in)
		if err != nil {
			return nil, err
		}
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		resolved = append(resolved, *a)
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].ID < resolved[j].ID })
	return resolved, nil
}

func findOrCreateAuthor(tx *gorm.DB, in dto.AuthorInput) (*models.Author, error) {
	q := tx.Where("name = ?", in.Name)
	if in.Email == nil {
		q = q.Where("email IS NULL")
	} else {
		q = q.Where("email = ?", *in.Email)
	}
	if in.Affiliation == nil {
		q = q.Where("affiliation IS NULL")
	} else {
		q = q.Where("affiliation = ?", *in.Affiliation)
	}

	var a models.Author
	err := q.Order("id asc").First(&a).Error
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find author: %w", err)
	}

	a = models.Author{Name: in.Name, Email: in.Email, Affiliation: in.Affiliation}
	if err := tx.Create(&a).Error; err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return &a, nil
}

// authorRefs builds id-only association targets so Append/Replace never
// touches author rows.
func authorRefs(authors []models.Author) []models.Author {
	refs := make([]models.Author, 0, len(authors))
	for _, a := range authors {
		refs = append(refs, models.Author{ID: a.ID})
	}
	return refs
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
