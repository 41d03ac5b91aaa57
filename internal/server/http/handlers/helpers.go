package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) uuid.UUID {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := val.(uuid.UUID)
	return id
}

// pathID parses the :id route parameter. Malformed identifiers are reported
// as not found so they are indistinguishable from absent rows.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeStatusError(c, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func writeStatusError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// writeError maps domain failures onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	if v, ok := domainErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": v.Fields})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		writeStatusError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domainErrors.ErrAccountDisabled):
		writeStatusError(c, http.StatusForbidden, "account disabled")
	case errors.Is(err, domainErrors.ErrNotFound):
		writeStatusError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		writeStatusError(c, http.StatusConflict, "already exists")
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		writeStatusError(c, http.StatusConflict, "order can no longer be cancelled")
	case errors.Is(err, domainErrors.ErrActiveOrders):
		writeStatusError(c, http.StatusConflict, "account has orders in progress")
	case errors.Is(err, domainErrors.ErrConflict):
		writeStatusError(c, http.StatusConflict, "conflict")
	case errors.Is(err, domainErrors.ErrOutOfStock):
		writeStatusError(c, http.StatusUnprocessableEntity, "insufficient stock")
	default:
		writeStatusError(c, http.StatusInternalServerError, "internal error")
	}
}
