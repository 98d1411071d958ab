package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

const userContextKey = "authUser"

// AuthUser is the acting identity resolved from the bearer token. Issuing
// these tokens is the auth collaborator's job, not this service's.
type AuthUser struct {
	ID   uuid.UUID
	Name string
	Role models.UserRole
}

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Authorization bearer token and stores the acting
// user in the request context. Requests without a valid token get 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthenticated(c, "missing bearer token")
			return
		}

		token, err := jwt.ParseWithClaims(
			strings.TrimPrefix(header, "Bearer "),
			&claims{},
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			},
		)
		if err != nil || !token.Valid {
			abortUnauthenticated(c, "invalid token")
			return
		}

		tokenClaims, ok := token.Claims.(*claims)
		if !ok {
			abortUnauthenticated(c, "invalid token")
			return
		}

		userID, err := uuid.Parse(tokenClaims.Subject)
		if err != nil {
			abortUnauthenticated(c, "invalid token subject")
			return
		}

		role := models.UserRole(tokenClaims.Role)
		if !role.IsValid() {
			abortUnauthenticated(c, "invalid token role")
			return
		}

		c.Set(userContextKey, AuthUser{ID: userID, Name: tokenClaims.Name, Role: role})
		c.Next()
	}
}

// CurrentUser returns the acting user stored by RequireAuth.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := value.(AuthUser)
	return user, ok
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":  "UNAUTHENTICATED",
		"error": message,
	})
}
