package handlers

import (
	"net/http"
	"time"

	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/gin-gonic/gin"
)

func respondError(ctx *gin.Context, status int, code string, message string, details ...string) {
	ctx.JSON(status, types.ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		Details:   details,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func respondValidationError(ctx *gin.Context, err error) {
	respondError(ctx, http.StatusBadRequest, types.CodeValidationError, "Invalid request", err.Error())
}

func respondNotFound(ctx *gin.Context, message string) {
	respondError(ctx, http.StatusNotFound, types.CodeNotFound, message)
}

func respondInternalError(ctx *gin.Context) {
	respondError(ctx, http.StatusInternalServerError, types.CodeInternalError, "Internal server error")
}

func respondUnauthenticated(ctx *gin.Context) {
	respondError(ctx, http.StatusUnauthorized, types.CodeTokenInvalid, "User not authenticated")
}
