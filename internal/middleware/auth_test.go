package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/auth"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func protectedRouter(tokens *auth.Manager, roles ...domain.Role) http.Handler {
	r := ginext.New("test")

	mw := []ginext.HandlerFunc{Auth(tokens)}
	if len(roles) > 0 {
		mw = append(mw, RequireRole(roles...))
	}

	g := r.Group("/secure", mw...)
	g.GET("/whoami", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxUserRole),
		})
	})

	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(auth.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	r := protectedRouter(auth.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewManager("secret", time.Hour)
	r := protectedRouter(tokens)

	token, err := tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"u1"`)
}

func TestRequireRole_RejectsUser(t *testing.T) {
	tokens := auth.NewManager("secret", time.Hour)
	r := protectedRouter(tokens, domain.RoleAdmin)

	token, err := tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	tokens := auth.NewManager("secret", time.Hour)
	r := protectedRouter(tokens, domain.RoleAdmin)

	token, err := tokens.Issue(&domain.User{ID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	r := ginext.New("test")
	g := r.Group("", RequestID())
	g.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"request_id": c.GetString("request_id")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestID_ReusesClientHeader(t *testing.T) {
	r := ginext.New("test")
	g := r.Group("", RequestID())
	g.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
}
