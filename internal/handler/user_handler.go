package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/middleware"
	"github.com/kelvinmfon2025/book-api/internal/service"
)

// UserHandler handles registration and account HTTP requests.
type UserHandler struct {
	membership service.MembershipServiceInterface
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(membership service.MembershipServiceInterface) *UserHandler {
	return &UserHandler{membership: membership}
}

// VerifyEmailRequest is the body of POST /api/v1/verify-email.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResendVerificationRequest is the body of POST /api/v1/resend-verification.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// ChangeRoleRequest is the body of PATCH /api/v1/users/:id/role.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role"`
}

// Register handles POST /api/v1/register
func (h *UserHandler) Register(c *gin.Context) {
	var in domain.Registration
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.membership.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, check your email for the verification code",
		"user":    user,
	})
}

// VerifyEmail handles POST /api/v1/verify-email
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.membership.VerifyEmail(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully", "user": user})
}

// ResendVerification handles POST /api/v1/resend-verification
func (h *UserHandler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if err := h.membership.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// GetProfile handles GET /api/v1/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.membership.GetProfile(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /api/v1/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.membership.UpdateProfile(c.Request.Context(), middleware.GetIdentity(c), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangeRole handles PATCH /api/v1/users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.membership.ChangeRole(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.membership.DeleteUser(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
