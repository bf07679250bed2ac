package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/middleware"
)

var kindStatus = map[error]int{
	domain.ErrInvalidRequest: http.StatusBadRequest,
	domain.ErrUnauthorized:   http.StatusUnauthorized,
	domain.ErrForbidden:      http.StatusForbidden,
	domain.ErrNotFound:       http.StatusNotFound,
	domain.ErrConflict:       http.StatusConflict,
}

// statusFor maps an error's kind to an HTTP status.
func statusFor(err error) int {
	if status, ok := kindStatus[domain.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": message}. Internal errors are logged
// with the request ID and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	message := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Error()
	}
	c.JSON(status, gin.H{"error": message})
}

// badRequest answers 400 with message.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// paginationFromQuery reads page and limit query parameters. Missing or
// non-numeric values fall back to page 1 and the default limit; values below
// one are raised to one.
func paginationFromQuery(c *gin.Context) domain.Pagination {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", domain.DefaultPageLimit)
	return domain.NewPagination(page, limit)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
