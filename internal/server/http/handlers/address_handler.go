package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/server/http/dto"
	"github.com/snstore/backend/internal/usecase"
)

// AddressHandler manages the address book endpoints.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:         a.ID.String(),
		Type:       string(a.Type),
		PostalCode: a.PostalCode,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		Reference:  a.Reference,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// Create handles POST /api/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req usecase.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	address, err := h.facade.CreateAddress(c.Request.Context(), CurrentUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAddressResponse(*address))
}

// List handles GET /api/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		response = append(response, toAddressResponse(a))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/addresses/:id.
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := h.facade.Address(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(*address))
}

// Update handles PUT /api/addresses/:id.
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req usecase.AddressUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	address, err := h.facade.UpdateAddress(c.Request.Context(), id, CurrentUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(*address))
}

// Delete handles DELETE /api/addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteAddress(c.Request.Context(), id, CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefault handles PUT /api/addresses/:id/default.
func (h *AddressHandler) SetDefault(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := h.facade.SetDefaultAddress(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(*address))
}
