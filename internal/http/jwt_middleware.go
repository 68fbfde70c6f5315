package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"paw-match/internal/service"
)

const ownerClaimsKey = "owner_claims"

// OwnerAuthMiddleware exige un access token de dueño válido y deja sus
// claims en el contexto para los handlers que mutan recursos propios.
func OwnerAuthMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt not configured"})
			c.Abort()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		claims, err := jwtSvc.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ownerClaimsKey, claims)
		c.Next()
	}
}

// GetOwnerClaims obtiene los claims del dueño autenticado, si los hay.
func GetOwnerClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(ownerClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}
