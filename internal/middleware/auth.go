package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// Identity is what the API needs to know about a caller: who they are and
// whether they hold the admin credential.
type Identity struct {
	ID      uint
	IsAdmin bool
}

// Claims is the token payload issued by the surrounding auth system.
type Claims struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Identify resolves a Bearer token into an Identity when one is present and
// valid. It never aborts: anonymous access stays possible and route groups
// decide what they require.
func Identify(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			ctx.Next()
			return
		}

		ctx.Set(identityKey, &Identity{ID: claims.UserID, IsAdmin: claims.IsAdmin})
		ctx.Next()
	}
}

// RequireAuth aborts requests that carry no resolved identity.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := IdentityFrom(ctx); !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Autenticação necessária"})
			return
		}
		ctx.Next()
	}
}

// RequireAdmin aborts requests whose identity lacks the admin credential.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := IdentityFrom(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Autenticação necessária"})
			return
		}
		if !identity.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Acesso restrito a administradores"})
			return
		}
		ctx.Next()
	}
}

// IdentityFrom returns the caller identity resolved by Identify, if any.
func IdentityFrom(ctx *gin.Context) (*Identity, bool) {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}
