package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/infrastructure/security"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/api/posts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCORS(t *testing.T) {
	router := newRouter(CORS("*"))

	tests := []struct {
		name   string
		method string
		path   string
		origin string
		status int
	}{
		{"preflight com Origin", http.MethodOptions, "/api/posts", "http://localhost:5173", http.StatusOK},
		{"OPTIONS sem Origin", http.MethodOptions, "/api/posts", "", http.StatusOK},
		{"OPTIONS em rota inexistente", http.MethodOptions, "/qualquer/coisa", "", http.StatusOK},
		{"GET com Origin", http.MethodGet, "/api/posts", "http://localhost:5173", http.StatusOK},
		{"GET sem Origin", http.MethodGet, "/api/posts", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions && tt.origin != "" {
				req.Header.Set("Access-Control-Request-Method", "POST")
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("esperava status %d, obteve %d", tt.status, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("esperava Access-Control-Allow-Origin '*', obteve '%s'", got)
			}
			if tt.method == http.MethodOptions && w.Body.Len() != 0 {
				t.Errorf("OPTIONS deveria ter corpo vazio, obteve '%s'", w.Body.String())
			}
		})
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	router := newRouter(CORS("https://inhouse.app, https://admin.inhouse.app"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Origin", "https://inhouse.app")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://inhouse.app" {
		t.Errorf("esperava a origem ecoada, obteve '%s'", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("esperava 403 para origem não liberada, obteve %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	t.Run("gera um ID quando ausente", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		if len(w.Header().Get(RequestIDHeader)) != 36 {
			t.Errorf("esperava um UUID, obteve '%s'", w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("reaproveita o ID recebido", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		router.ServeHTTP(w, req)

		if w.Header().Get(RequestIDHeader) != "abc-123" {
			t.Errorf("esperava 'abc-123', obteve '%s'", w.Header().Get(RequestIDHeader))
		}
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := security.NewJWTService("test-secret", time.Hour)

	router := gin.New()
	unauthorized := func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	router.GET("/me", RequireAuth(tokens, unauthorized), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "email": c.GetString(UserEmailContextKey)})
	})

	valid, err := tokens.Issue(42, "ana@x.com", "tenant")
	if err != nil {
		t.Fatalf("falha ao emitir token: %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sem header", "", http.StatusUnauthorized},
		{"esquema errado", "Basic abc", http.StatusUnauthorized},
		{"token inválido", "Bearer nao-e-um-jwt", http.StatusUnauthorized},
		{"token válido", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("esperava status %d, obteve %d", tt.status, w.Code)
			}
		})
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	router.ServeHTTP(w, req)

	expected := `{"email":"ana@x.com","id":42}`
	if w.Body.String() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
	}
}
