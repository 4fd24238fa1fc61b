package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grapevine-dev/grapevine/internal/services"
)

// respondServiceError maps a rule violation onto its HTTP status and
// returns its message verbatim. Anything that is not a services.Error is a
// store fault and surfaces as a 500, never as a rule category.
func respondServiceError(ctx *gin.Context, err error) {
	var svcErr *services.Error

	if errors.As(err, &svcErr) {
		ctx.JSON(statusForKind(svcErr.Kind), gin.H{"error": svcErr.Message})
		return
	}

	log.Printf("Unexpected service error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindConflict, services.KindLimitExceeded:
		return http.StatusConflict
	case services.KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
