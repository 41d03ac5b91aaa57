package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/server/http/dto"
	"github.com/snstore/backend/internal/server/http/middleware"
)

// AuthHandler processes registration, login and account recovery.
type AuthHandler struct {
	auth    AuthFacade
	account AccountFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(auth AuthFacade, account AccountFacade) *AuthHandler {
	return &AuthHandler{auth: auth, account: account}
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	usr, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: toUserResponse(usr)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	usr, token, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: toUserResponse(usr)})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.SetAuthCookie(c, "")
	c.Status(http.StatusNoContent)
}

// Verify handles GET /api/auth/verify. Reaching it through the auth
// middleware already proves the token; it returns the token's user.
func (h *AuthHandler) Verify(c *gin.Context) {
	usr, _, err := h.account.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(usr))
}

// ForgotPassword handles POST /api/account/recover. The reset token is never
// written to the response; unknown emails get the same answer as known ones
// so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	_, _ = h.account.RequestPasswordReset(c.Request.Context(), req.Email)

	c.Status(http.StatusAccepted)
}

// ResetPassword handles POST /api/account/reset.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	if err := h.account.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
