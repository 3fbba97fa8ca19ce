package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/models"
	"paperhub/internal/httpapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a per-test in-memory database. The shared cache keeps the
// database alive across the pooled connections GORM opens.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Paper{}, &models.Author{}))
	return db
}

func strPtr(s string) *string { return &s }

func paperInput(title, venue string, year int, authors ...dto.AuthorInput) dto.PaperInput {
	return dto.PaperInput{Title: title, PublishedIn: venue, Year: year, Authors: authors}
}

func TestPaperRepo_Create(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, paperInput("Attention Is All You Need", "NeurIPS", 2017,
		dto.AuthorInput{Name: "Jane Smith"},
		dto.AuthorInput{Name: "John Doe", Email: strPtr("john@mail.utoronto.ca"), Affiliation: strPtr("University of Toronto")},
	))
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Attention Is All You Need", created.Title)
	assert.Equal(t, "NeurIPS", created.PublishedIn)
	assert.Equal(t, 2017, created.Year)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	require.Len(t, created.Authors, 2)
	// authors come back ordered by id
	assert.Less(t, created.Authors[0].ID, created.Authors[1].ID)
}

func TestPaperRepo_Create_ReusesMatchingAuthor(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	same := dto.AuthorInput{Name: "Jane Smith", Affiliation: strPtr("University A")}

	first, err := repo.Create(ctx, paperInput("First", "ICSE", 2023, same))
	require.NoError(t, err)
	second, err := repo.Create(ctx, paperInput("Second", "ICSE", 2024, same))
	require.NoError(t, err)

	require.Len(t, first.Authors, 1)
	require.Len(t, second.Authors, 1)
	assert.Equal(t, first.Authors[0].ID, second.Authors[0].ID)

	var count int64
	require.NoError(t, db.Model(&models.Author{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPaperRepo_Create_DifferentEmailIsDifferentAuthor(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, paperInput("First", "ICSE", 2023,
		dto.AuthorInput{Name: "Jane Smith"}))
	require.NoError(t, err)
	_, err = repo.Create(ctx, paperInput("Second", "ICSE", 2024,
		dto.AuthorInput{Name: "Jane Smith", Email: strPtr("jane@example.org")}))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Author{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestPaperRepo_Create_DedupesRepeatedAuthor(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)

	dup := dto.AuthorInput{Name: "Jane Smith"}
	created, err := repo.Create(context.Background(), paperInput("T", "V", 2024, dup, dup))
	require.NoError(t, err)

	assert.Len(t, created.Authors, 1)
}

func TestPaperRepo_GetAll_Pagination(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := repo.Create(ctx, paperInput(title, "ICSE", 2024, dto.AuthorInput{Name: "A"}))
		require.NoError(t, err)
	}

	list, total, err := repo.GetAll(ctx, dto.PaperFilters{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Two", list[0].Title)
}

func TestPaperRepo_GetAll_Filters(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, paperInput("P1", "ICSE 2023", 2023,
		dto.AuthorInput{Name: "Jane Smith"}, dto.AuthorInput{Name: "John Doe"}))
	require.NoError(t, err)
	_, err = repo.Create(ctx, paperInput("P2", "FSE 2024", 2024,
		dto.AuthorInput{Name: "Jane Smith"}))
	require.NoError(t, err)
	_, err = repo.Create(ctx, paperInput("P3", "icse workshops", 2024,
		dto.AuthorInput{Name: "John Doe"}))
	require.NoError(t, err)

	t.Run("by year", func(t *testing.T) {
		year := 2024
		list, total, err := repo.GetAll(ctx, dto.PaperFilters{Year: &year, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("publishedIn substring is case-insensitive", func(t *testing.T) {
		list, total, err := repo.GetAll(ctx, dto.PaperFilters{PublishedIn: "IcSe", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, list, 2)
		assert.Equal(t, "P1", list[0].Title)
		assert.Equal(t, "P3", list[1].Title)
	})

	t.Run("single author filter", func(t *testing.T) {
		_, total, err := repo.GetAll(ctx, dto.PaperFilters{Authors: []string{"smith"}, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("multiple author filters are ANDed", func(t *testing.T) {
		list, total, err := repo.GetAll(ctx, dto.PaperFilters{Authors: []string{"smith", "doe"}, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "P1", list[0].Title)
	})
}

func TestPaperRepo_GetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrPaperNotFound)
}

func TestPaperRepo_Update_ReplacesAuthorSet(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, paperInput("Old Title", "Old Venue", 2020,
		dto.AuthorInput{Name: "Old Author"}))
	require.NoError(t, err)
	oldAuthorID := created.Authors[0].ID

	updated, err := repo.Update(ctx, created.ID, paperInput("New Title", "New Venue", 2024,
		dto.AuthorInput{Name: "New Author"}))
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "New Venue", updated.PublishedIn)
	assert.Equal(t, 2024, updated.Year)
	require.Len(t, updated.Authors, 1)
	assert.Equal(t, "New Author", updated.Authors[0].Name)
	assert.NotEqual(t, oldAuthorID, updated.Authors[0].ID)

	// round-trip matches the update
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	require.Len(t, got.Authors, 1)
	assert.Equal(t, "New Author", got.Authors[0].Name)

	// the old author row survives, only the association is gone
	var old models.Author
	require.NoError(t, db.First(&old, oldAuthorID).Error)
}

func TestPaperRepo_Update_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)

	_, err := repo.Update(context.Background(), 12345, paperInput("T", "V", 2024,
		dto.AuthorInput{Name: "A"}))
	assert.ErrorIs(t, err, models.ErrPaperNotFound)
}

func TestPaperRepo_Delete(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewPaperRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, paperInput("T", "V", 2024, dto.AuthorInput{Name: "A"}))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrPaperNotFound)

	// deleting a paper never deletes its authors
	var count int64
	require.NoError(t, db.Model(&models.Author{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), models.ErrPaperNotFound)
}
