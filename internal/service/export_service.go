package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/kelvinmfon2025/book-api/internal/authz"
	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/repository"
)

// DefaultExportPageSize is the number of books read per query while exporting.
const DefaultExportPageSize = domain.MaxPageLimit

// ExportFormat is the encoding of a catalog export.
type ExportFormat string

const (
	ExportFormatCSV    ExportFormat = "csv"
	ExportFormatNDJSON ExportFormat = "ndjson"
)

// ParseExportFormat parses a format name. An empty name selects NDJSON.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportFormatNDJSON:
		return ExportFormatNDJSON, nil
	case ExportFormatCSV:
		return ExportFormatCSV, nil
	default:
		return "", domain.ErrInvalidExportFormat
	}
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	if f == ExportFormatCSV {
		return "text/csv"
	}
	return "application/x-ndjson"
}

var csvHeader = []string{
	"id", "title", "authors", "isbn", "publisher", "publication_year", "genres",
	"language", "location", "total_copies", "available_copies", "created_at", "updated_at",
}

type flusher interface {
	Flush()
}

// ExportService streams the catalog as CSV or NDJSON.
type ExportService struct {
	books    repository.BookRepository
	pageSize int
}

// NewExportService creates a new ExportService.
func NewExportService(books repository.BookRepository) *ExportService {
	return &ExportService{books: books, pageSize: DefaultExportPageSize}
}

// SetPageSize overrides the number of books read per query, up to
// domain.MaxPageLimit.
func (s *ExportService) SetPageSize(n int) {
	if n > 0 && n <= domain.MaxPageLimit {
		s.pageSize = n
	}
}

// ExportCatalog writes every book to w in title order. w is flushed after
// each page when it supports flushing, so large catalogs stream to the
// client instead of buffering.
func (s *ExportService) ExportCatalog(ctx context.Context, identity domain.Identity, format ExportFormat, w io.Writer) (int, error) {
	if err := authorizeCaller(identity, authz.ActionManageCatalog); err != nil {
		return 0, err
	}

	var encode func(buf *bytes.Buffer, books []domain.Book) error
	switch format {
	case ExportFormatCSV:
		encode = encodeCSV
		if err := writeCSVRow(w, csvHeader); err != nil {
			return 0, err
		}
	case ExportFormatNDJSON:
		encode = encodeNDJSON
	default:
		return 0, domain.ErrInvalidExportFormat
	}

	var (
		count int
		buf   bytes.Buffer
	)
	for page := 1; ; page++ {
		books, total, err := s.books.List(ctx, domain.NewPagination(page, s.pageSize))
		if err != nil {
			return count, fmt.Errorf("list books: %w", err)
		}
		if len(books) == 0 {
			break
		}

		buf.Reset()
		if err := encode(&buf, books); err != nil {
			return count, err
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return count, fmt.Errorf("write export: %w", err)
		}
		if f, ok := w.(flusher); ok {
			f.Flush()
		}

		count += len(books)
		if count >= total || len(books) < s.pageSize {
			break
		}
	}

	logger.InfoContext(ctx, "Catalog exported",
		slog.String("format", string(format)),
		slog.Int("books", count),
		slog.String("exported_by", identity.UserID),
	)
	return count, nil
}

func writeCSVRow(w io.Writer, record []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func encodeCSV(buf *bytes.Buffer, books []domain.Book) error {
	cw := csv.NewWriter(buf)
	for _, b := range books {
		year := ""
		if b.PublicationYear != nil {
			year = strconv.Itoa(*b.PublicationYear)
		}
		record := []string{
			b.ID,
			b.Title,
			strings.Join(b.Authors, "; "),
			b.ISBN,
			b.Publisher,
			year,
			strings.Join(b.Genres, "; "),
			b.Language,
			b.Location,
			strconv.Itoa(b.TotalCopies),
			strconv.Itoa(b.AvailableCopies),
			b.CreatedAt.Format(time.RFC3339),
			b.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeNDJSON(buf *bytes.Buffer, books []domain.Book) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(buf)
	for i := range books {
		if err := enc.Encode(&books[i]); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	return nil
}
