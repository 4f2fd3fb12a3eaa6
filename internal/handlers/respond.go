package handlers

import (
	"errors"
	"net/http"

	"clinic-billing-backend/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps domain error kinds to HTTP statuses. Every error kind
// stays distinguishable for the caller.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var refErr *apperrors.ReferentialIntegrityError
	var ledgerErr *apperrors.LedgerConsistencyError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.As(err, &refErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": refErr.Error()})
	case errors.As(err, &ledgerErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment was not recorded: " + ledgerErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
