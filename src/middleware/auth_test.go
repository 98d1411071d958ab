package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", RequireAuth(testSecret), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": user.ID.String(), "role": string(user.Role)})
	})
	return router
}

func signToken(t *testing.T, secret, subject, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"name": "Test User",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuth_ValidToken(t *testing.T) {
	router := newAuthRouter()
	userID := uuid.New()
	token := signToken(t, testSecret, userID.String(), "OPERATOR")

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), userID.String())
	assert.Contains(t, recorder.Body.String(), "OPERATOR")
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	recorder := doRequest(newAuthRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "UNAUTHENTICATED")
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	recorder := doRequest(newAuthRouter(), "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "another-secret", uuid.New().String(), "OPERATOR")
	recorder := doRequest(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "OPERATOR",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := jwtToken.SignedString([]byte(testSecret))
	require.NoError(t, err)

	recorder := doRequest(newAuthRouter(), "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_NonUUIDSubject(t *testing.T) {
	token := signToken(t, testSecret, "user-42", "OPERATOR")
	recorder := doRequest(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_UnknownRole(t *testing.T) {
	token := signToken(t, testSecret, uuid.New().String(), "SUPERUSER")
	recorder := doRequest(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
