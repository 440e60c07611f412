package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"habits-be/internal/jwt"
	"habits-be/internal/repository"
)

// ContextUserIDKey is the Gin context key holding the authenticated user's id
const ContextUserIDKey = "user_id"

// ContextUserKey is the Gin context key holding the authenticated *entities.User
const ContextUserKey = "user"

// AuthMiddleware validates the Authorization: Bearer <token> header, resolves
// the token's subject to a user record and stores both on the context. Every
// failure (missing header, bad signature, expired token, malformed subject,
// unknown user) produces the same 401 body so callers learn nothing about the
// cause.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthenticated(c)
			return
		}

		userID, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			unauthenticated(c)
			return
		}

		// A malformed subject fails the lookup the same way a deleted
		// user does; both collapse into the generic 401.
		user, err := userRepo.FindByID(userID)
		if err != nil {
			unauthenticated(c)
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "could not validate credentials",
	})
}
