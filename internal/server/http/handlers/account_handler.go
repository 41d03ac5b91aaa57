package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snstore/backend/internal/server/http/dto"
)

// AccountHandler serves the authenticated user's profile and account
// self-service endpoints.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Profile handles GET /api/users/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	usr, _, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(usr))
}

// ProfileFull handles GET /api/users/profile/full, the profile together with
// the address book.
func (h *AccountHandler) ProfileFull(c *gin.Context) {
	usr, addresses, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response := dto.ProfileResponse{
		User:      toUserResponse(usr),
		Addresses: make([]dto.AddressResponse, 0, len(addresses)),
	}
	for _, a := range addresses {
		response.Addresses = append(response.Addresses, toAddressResponse(a))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateProfile handles PUT /api/users/profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	usr, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c), req.Name, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(usr))
}

// ChangePassword handles POST /api/account/password.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	if err := h.facade.ChangePassword(c.Request.Context(), CurrentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Close handles DELETE /api/account.
func (h *AccountHandler) Close(c *gin.Context) {
	if err := h.facade.CloseAccount(c.Request.Context(), CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
