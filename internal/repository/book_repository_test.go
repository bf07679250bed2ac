package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/testutil"
)

func TestPostgresBookRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresBookRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		testDB.TruncateTables(t)

		year := 1999
		book := testutil.NewBook("Refactoring", 2)
		book.PublicationYear = &year
		book.Publisher = "Addison-Wesley"
		require.NoError(t, repo.Create(ctx, book))

		got, err := repo.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Refactoring", got.Title)
		assert.Equal(t, book.Authors, got.Authors)
		assert.Equal(t, "Addison-Wesley", got.Publisher)
		assert.Equal(t, "", got.Language)
		require.NotNil(t, got.PublicationYear)
		assert.Equal(t, 1999, *got.PublicationYear)
		assert.Equal(t, 2, got.AvailableCopies)
	})

	t.Run("unknown and malformed ids return nil", func(t *testing.T) {
		testDB.TruncateTables(t)

		got, err := repo.GetByID(ctx, "9b2f6d7e-0000-4000-8000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByID(ctx, "not-a-uuid")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		testDB.TruncateTables(t)

		first := testutil.NewBook("First", 1)
		require.NoError(t, repo.Create(ctx, first))

		second := testutil.NewBook("Second", 1)
		second.ISBN = first.ISBN
		err := repo.Create(ctx, second)
		assert.True(t, errors.Is(err, repository.ErrDuplicate), "got %v", err)
	})

	t.Run("decrement stops at zero", func(t *testing.T) {
		testDB.TruncateTables(t)

		book := testutil.NewBook("Single Copy", 1)
		require.NoError(t, repo.Create(ctx, book))

		ok, err := repo.DecrementAvailable(ctx, book.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.DecrementAvailable(ctx, book.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableCopies)
	})

	t.Run("increment is clamped at total", func(t *testing.T) {
		testDB.TruncateTables(t)

		book := testutil.NewBook("Full Shelf", 2)
		require.NoError(t, repo.Create(ctx, book))

		require.NoError(t, repo.IncrementAvailable(ctx, book.ID))

		got, err := repo.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.AvailableCopies)
	})

	t.Run("update", func(t *testing.T) {
		testDB.TruncateTables(t)

		book := testutil.NewBook("Draft Title", 3)
		require.NoError(t, repo.Create(ctx, book))

		book.Title = "Final Title"
		book.Genres = []string{"history", "essays"}
		require.NoError(t, book.ResizeCopies(5))
		require.NoError(t, repo.Update(ctx, book))

		got, err := repo.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Final Title", got.Title)
		assert.Equal(t, []string{"history", "essays"}, got.Genres)
		assert.Equal(t, 5, got.TotalCopies)
		assert.Equal(t, 5, got.AvailableCopies)
	})

	t.Run("search matches title authors genres and isbn ignoring case", func(t *testing.T) {
		testDB.TruncateTables(t)

		dune := testutil.NewBook("Dune", 1)
		dune.Authors = []string{"Frank Herbert"}
		dune.Genres = []string{"science fiction"}
		dune.ISBN = "9780441172719"
		require.NoError(t, repo.Create(ctx, dune))

		emma := testutil.NewBook("Emma", 1)
		emma.Authors = []string{"Jane Austen"}
		emma.Genres = []string{"romance"}
		require.NoError(t, repo.Create(ctx, emma))

		tests := []struct {
			query string
			want  []string
		}{
			{"dUnE", []string{"Dune"}},
			{"herbert", []string{"Dune"}},
			{"ROMANCE", []string{"Emma"}},
			{"0441172", []string{"Dune"}},
			{"e", []string{"Dune", "Emma"}},
			{"%", nil},
			{"tolkien", nil},
		}

		for _, tt := range tests {
			books, total, err := repo.Search(ctx, tt.query, domain.NewPagination(1, 10))
			require.NoError(t, err, tt.query)
			titles := make([]string, 0, len(books))
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, len(tt.want), total, tt.query)
			if tt.want == nil {
				assert.Empty(t, titles, tt.query)
			} else {
				assert.Equal(t, tt.want, titles, tt.query)
			}
		}
	})

	t.Run("search paginates", func(t *testing.T) {
		testDB.TruncateTables(t)

		for _, title := range []string{"Alpha Go", "Beta Go", "Gamma Go"} {
			require.NoError(t, repo.Create(ctx, testutil.NewBook(title, 1)))
		}

		books, total, err := repo.Search(ctx, "go", domain.NewPagination(2, 2))
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, books, 1)
		assert.Equal(t, "Gamma Go", books[0].Title)
	})

	t.Run("list and get by ids", func(t *testing.T) {
		testDB.TruncateTables(t)

		a := testutil.NewBook("A", 1)
		b := testutil.NewBook("B", 1)
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		books, total, err := repo.List(ctx, domain.NewPagination(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, books, 2)

		byID, err := repo.GetByIDs(ctx, []string{a.ID, "bogus", b.ID})
		require.NoError(t, err)
		assert.Len(t, byID, 2)
		assert.Equal(t, "B", byID[b.ID].Title)
	})

	t.Run("delete", func(t *testing.T) {
		testDB.TruncateTables(t)

		book := testutil.NewBook("Gone", 1)
		require.NoError(t, repo.Create(ctx, book))
		require.NoError(t, repo.Delete(ctx, book.ID))

		got, err := repo.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
