package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/auth"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func reject(ctx *gin.Context, status int, code string, message string) {
	ctx.AbortWithStatusJSON(status, types.ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// AuthMiddleware guards every non-public route: it verifies the bearer
// token, resolves the encoded user against the store and attaches the
// identity to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			reject(ctx, http.StatusUnauthorized, types.CodeTokenMissing, "Authorization token is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			reject(ctx, http.StatusUnauthorized, types.CodeTokenMissing, "Authorization header format must be Bearer {token}")
			return
		}

		token, err := auth.VerifyJWT(parts[1])

		if err != nil {
			reject(ctx, http.StatusUnauthorized, types.CodeTokenInvalid, "Invalid or expired token")
			return
		}

		userID, err := auth.ExtractUserID(token)

		if err != nil {
			reject(ctx, http.StatusUnauthorized, types.CodeTokenInvalid, "Invalid token claims")
			return
		}

		var user models.User

		if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			reject(ctx, http.StatusUnauthorized, types.CodeUserNotFound, "User not found")
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}
