package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/service"
	"github.com/kelvinmfon2025/book-api/internal/validator"
)

// seedIdentity is the caller recorded for books created by seed.
var seedIdentity = domain.Identity{UserID: "libraryctl", Role: domain.RoleAdmin}

type catalogFile struct {
	Books []catalogEntry `yaml:"books"`
}

type catalogEntry struct {
	Title           string   `yaml:"title"`
	Authors         []string `yaml:"authors"`
	ISBN            string   `yaml:"isbn"`
	Publisher       string   `yaml:"publisher"`
	PublicationYear *int     `yaml:"publicationYear"`
	Genres          []string `yaml:"genres"`
	Language        string   `yaml:"language"`
	Location        string   `yaml:"location"`
	Description     string   `yaml:"description"`
	CoverImage      string   `yaml:"coverImage"`
	TotalCopies     int      `yaml:"totalCopies"`
	AvailableCopies *int     `yaml:"availableCopies"`
}

func (e catalogEntry) input() domain.BookInput {
	return domain.BookInput{
		Title:           e.Title,
		Authors:         e.Authors,
		ISBN:            e.ISBN,
		Publisher:       e.Publisher,
		PublicationYear: e.PublicationYear,
		Genres:          e.Genres,
		Language:        e.Language,
		Location:        e.Location,
		Description:     e.Description,
		CoverImage:      e.CoverImage,
		TotalCopies:     e.TotalCopies,
		AvailableCopies: e.AvailableCopies,
	}
}

// parseCatalog decodes a catalog seed file. Unknown keys are rejected.
func parseCatalog(r io.Reader) ([]domain.BookInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog file is empty")
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	books := make([]domain.BookInput, 0, len(f.Books))
	for _, e := range f.Books {
		books = append(books, e.input())
	}
	return books, nil
}

type seedResult struct {
	Created int
	Skipped int
	Failed  int
}

// seedCatalog creates each book through the catalog service. Books whose
// ISBN already exists are skipped so the file can be applied repeatedly.
func seedCatalog(ctx context.Context, catalog service.CatalogServiceInterface, books []domain.BookInput) seedResult {
	var res seedResult
	for i, in := range books {
		book, err := catalog.Create(ctx, seedIdentity, in)
		switch {
		case err == nil:
			res.Created++
			ok("%s (%s) x%d", book.Title, book.ISBN, book.TotalCopies)
		case errors.Is(err, domain.ErrDuplicateISBN):
			res.Skipped++
			warn("Skipping %q: ISBN %s already in catalog", in.Title, in.ISBN)
		default:
			res.Failed++
			warn("Entry %d (%q): %v", i+1, in.Title, err)
		}
	}
	return res
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load books from a YAML catalog file",
		Long: `Load books from a YAML catalog file.

The file holds a top-level "books" list using the same field names as the
REST API. Books whose ISBN is already catalogued are skipped.

Example:
  books:
    - title: Dune
      authors: [Frank Herbert]
      isbn: "9780441172719"
      publicationYear: 1965
      genres: [science fiction]
      totalCopies: 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			books, err := parseCatalog(f)
			if err != nil {
				return err
			}
			if len(books) == 0 {
				warn("No books in %s", file)
				return nil
			}

			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			catalog := service.NewCatalogService(
				repository.NewPostgresBookRepository(pool),
				repository.NewPostgresUserRepository(pool),
				repository.NewPostgresReservationRepository(pool),
				repository.NewPostgresTransactor(pool),
				validator.NewValidator(),
			)

			header("Seeding %d books from %s", len(books), file)
			res := seedCatalog(ctx, catalog, books)
			fmt.Printf("\n%d created, %d skipped, %d failed\n", res.Created, res.Skipped, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d catalog entries failed", res.Failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "catalog.yml", "Catalog YAML file")
	return cmd
}
