package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, userID int64, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Authorize(testSecret)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "role": CurrentRole(c)})
	})
	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorize_ValidToken(t *testing.T) {
	r := authTestRouter()
	w := doGet(r, signToken(t, testSecret, 7, "user", time.Hour))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthorize_MissingToken(t *testing.T) {
	r := authTestRouter()
	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthorize_WrongSecret(t *testing.T) {
	r := authTestRouter()
	w := doGet(r, signToken(t, []byte("other-secret"), 7, "user", time.Hour))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthorize_ExpiredToken(t *testing.T) {
	r := authTestRouter()
	w := doGet(r, signToken(t, testSecret, 7, "user", -time.Hour))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRoles_UserCannotReachAdmin(t *testing.T) {
	r := authTestRouter(RequireRoles("admin"))
	w := doGet(r, signToken(t, testSecret, 7, "user", time.Hour))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoles_AdminAllowed(t *testing.T) {
	r := authTestRouter(RequireRoles("admin"))
	w := doGet(r, signToken(t, testSecret, 1, "admin", time.Hour))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
