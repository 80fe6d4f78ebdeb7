package auth

import (
	"net/http"
	"strings"

	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/models"
	"github.com/Farounaga/Esport-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// unauthorized aborts with the same generic 401 for every failure mode so a
// caller cannot tell a bad signature from a banned account.
func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}

// Middleware creates a gin middleware that resolves the bearer token to a
// live user and stores the user ID in the request context.
func Middleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		userID, err := issuer.Verify(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		// A valid token for a deleted account must not authenticate.
		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			unauthorized(c)
			return
		}

		// Deactivated and banned accounts hold valid tokens but are not
		// usable.
		if !user.IsActive || user.IsBanned {
			unauthorized(c)
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
