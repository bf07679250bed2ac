package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/middleware"
	"github.com/kelvinmfon2025/book-api/internal/service"
)

// ExportHandler handles catalog export HTTP requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// streamWriter defers the response headers until the first write, so errors
// raised before any data is produced can still be answered with a status.
type streamWriter struct {
	c       *gin.Context
	format  service.ExportFormat
	started bool
}

func (w *streamWriter) Write(data []byte) (int, error) {
	if !w.started {
		w.started = true
		w.c.Header("Content-Type", w.format.ContentType())
		w.c.Header("X-Content-Type-Options", "nosniff")
		w.c.Header("Content-Disposition", "attachment; filename=\"books."+string(w.format)+"\"")
		w.c.Status(http.StatusOK)
	}
	return w.c.Writer.Write(data)
}

func (w *streamWriter) Flush() {
	w.c.Writer.Flush()
}

// ExportBooks handles GET /api/v1/exports/books?format=csv|ndjson
func (h *ExportHandler) ExportBooks(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}

	requestID := middleware.GetRequestID(c)
	w := &streamWriter{c: c, format: format}

	count, err := h.exportService.ExportCatalog(c.Request.Context(), middleware.GetIdentity(c), format, w)
	if err != nil {
		if !w.started {
			respondError(c, err)
			return
		}
		// Headers are already sent; the client sees a truncated body.
		logger.WithRequestID(requestID).Error("Catalog export aborted",
			slog.Int("books_written", count),
			slog.String("error", err.Error()),
		)
		return
	}

	if !w.started {
		c.Header("Content-Type", format.ContentType())
		c.Status(http.StatusOK)
	}
}
