package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrBookIDRequired, http.StatusBadRequest},
		{domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{domain.ErrAccessDenied, http.StatusForbidden},
		{domain.ErrBookNotFound, http.StatusNotFound},
		{domain.ErrNoAvailableCopies, http.StatusConflict},
		{fmt.Errorf("lock book: %w", errors.New("timeout")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestPaginationFromQuery(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, domain.DefaultPageLimit},
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=-4", 1, 1},
		{"page=abc&limit=xyz", 1, domain.DefaultPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			p := paginationFromQuery(c)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}
