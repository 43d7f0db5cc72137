package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func authRouter(cache *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(cache), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":     c.GetString(CtxUserID),
			"role":       c.GetString(CtxRole),
			"businessID": c.GetString(CtxBusinessID),
		})
	})
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "admin", "biz1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doAuthRequest(t, authRouter(nil), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	for _, want := range []string{`"userID":"u1"`, `"role":"admin"`, `"businessID":"biz1"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("response %s missing %s", w.Body.String(), want)
		}
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	if w := doAuthRequest(t, authRouter(nil), ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", w.Code)
	}
	if w := doAuthRequest(t, authRouter(nil), "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer header: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareTamperedToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "customer", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	tampered := token[:len(token)-2] + "xx"

	if w := doAuthRequest(t, authRouter(nil), "Bearer "+tampered); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

// An unreachable cache must degrade to per-request validation, never reject
// or block valid requests.
func TestAuthMiddlewareUnreachableCache(t *testing.T) {
	cache := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	token, err := utils.GenerateToken("u1", "customer", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doAuthRequest(t, authRouter(cache), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"userID":"u1"`) {
		t.Errorf("response %s missing userID", w.Body.String())
	}
}
