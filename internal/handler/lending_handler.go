package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/middleware"
	"github.com/kelvinmfon2025/book-api/internal/service"
)

// LendingHandler handles borrowing and reservation HTTP requests.
type LendingHandler struct {
	lending service.LendingServiceInterface
}

// NewLendingHandler creates a new LendingHandler.
func NewLendingHandler(lending service.LendingServiceInterface) *LendingHandler {
	return &LendingHandler{lending: lending}
}

// BorrowRequest is the body of POST /api/v1/borrow.
type BorrowRequest struct {
	BookID string `json:"bookId"`
}

// BorrowResponse represents a new loan in the API response.
type BorrowResponse struct {
	Message    string `json:"message"`
	LoanID     string `json:"loanId"`
	BookID     string `json:"bookId"`
	BorrowDate string `json:"borrowDate"`
	DueDate    string `json:"dueDate"`
}

// ReturnResponse represents a completed return in the API response.
type ReturnResponse struct {
	Message    string `json:"message"`
	BookID     string `json:"bookId"`
	ReturnDate string `json:"returnDate"`
}

// Borrow handles POST /api/v1/borrow
func (h *LendingHandler) Borrow(c *gin.Context) {
	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid request body")
		return
	}

	loan, err := h.lending.Borrow(c.Request.Context(), middleware.GetIdentity(c), req.BookID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BorrowResponse{
		Message:    "Book borrowed successfully",
		LoanID:     loan.ID,
		BookID:     loan.BookID,
		BorrowDate: loan.BorrowDate.UTC().Format(TimeFormat),
		DueDate:    loan.DueDate.UTC().Format(TimeFormat),
	})
}

// Return handles POST /api/v1/return/:bookId
func (h *LendingHandler) Return(c *gin.Context) {
	receipt, err := h.lending.Return(c.Request.Context(), middleware.GetIdentity(c), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReturnResponse{
		Message:    "Book returned successfully",
		BookID:     receipt.BookID,
		ReturnDate: receipt.ReturnDate.UTC().Format(TimeFormat),
	})
}

// Reserve handles POST /api/v1/reserve/:bookId
func (h *LendingHandler) Reserve(c *gin.Context) {
	res, err := h.lending.Reserve(c.Request.Context(), middleware.GetIdentity(c), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reservation": res})
}

// ListBorrowed handles GET /api/v1/users/:id/borrowed
func (h *LendingHandler) ListBorrowed(c *gin.Context) {
	result, err := h.lending.ListBorrowed(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListReservations handles GET /api/v1/reservations
func (h *LendingHandler) ListReservations(c *gin.Context) {
	filter := domain.ReservationFilter{
		BookID: c.Query("bookId"),
		UserID: c.Query("userId"),
		Status: domain.ReservationStatus(c.Query("status")),
	}

	page, err := h.lending.ListReservations(c.Request.Context(), middleware.GetIdentity(c), filter, paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CancelReservation handles POST /api/v1/reservations/:id/cancel
func (h *LendingHandler) CancelReservation(c *gin.Context) {
	res, err := h.lending.CancelReservation(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// FulfillNextReservation handles POST /api/v1/reservations/fulfill/:bookId
func (h *LendingHandler) FulfillNextReservation(c *gin.Context) {
	result, err := h.lending.FulfillNextReservation(c.Request.Context(), middleware.GetIdentity(c), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
