package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/service"
)

func TestExportHandler_ExportBooks(t *testing.T) {
	t.Run("streams csv", func(t *testing.T) {
		s := newTestServer(t)
		s.export.EXPECT().ExportCatalog(mock.Anything, librarian, service.ExportFormatCSV, mock.Anything).
			RunAndReturn(func(ctx context.Context, identity domain.Identity, format service.ExportFormat, w io.Writer) (int, error) {
				_, err := io.WriteString(w, "id,title\nb1,Dune\n")
				return 1, err
			})

		w := s.do(http.MethodGet, "/api/v1/exports/books?format=csv", "", "lib-1", "librarian")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "books.csv")
		assert.Equal(t, "id,title\nb1,Dune\n", w.Body.String())
	})

	t.Run("defaults to ndjson", func(t *testing.T) {
		s := newTestServer(t)
		s.export.EXPECT().ExportCatalog(mock.Anything, librarian, service.ExportFormatNDJSON, mock.Anything).
			Return(0, nil)

		w := s.do(http.MethodGet, "/api/v1/exports/books", "", "lib-1", "librarian")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
	})

	t.Run("unknown format", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/api/v1/exports/books?format=xml", "", "lib-1", "librarian")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"format must be csv or ndjson"}`, w.Body.String())
	})

	t.Run("error before streaming maps to status", func(t *testing.T) {
		s := newTestServer(t)
		s.export.EXPECT().ExportCatalog(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, errors.New("connection reset"))

		w := s.do(http.MethodGet, "/api/v1/exports/books", "", "lib-1", "librarian")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})

	t.Run("error after streaming keeps partial body", func(t *testing.T) {
		s := newTestServer(t)
		s.export.EXPECT().ExportCatalog(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, identity domain.Identity, format service.ExportFormat, w io.Writer) (int, error) {
				_, _ = io.WriteString(w, "{\"id\":\"b1\"}\n")
				return 1, errors.New("connection reset")
			})

		w := s.do(http.MethodGet, "/api/v1/exports/books", "", "lib-1", "librarian")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "{\"id\":\"b1\"}\n", w.Body.String())
	})
}
