package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-pos/middleware"
	"restaurant-pos/models"
	"restaurant-pos/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	secret  = []byte("test-secret")
	cashier = &models.User{ID: "u-cashier", Email: "cashier@example.com", Role: models.RoleCashier, IsActive: true}
)

// newAuth returns an Auth backed by a store that knows the cashier.
func newAuth(t *testing.T) (*middleware.Auth, *store.Memory) {
	t.Helper()
	users := store.NewMemory(store.Seed{})
	require.NoError(t, users.AddUser(context.Background(), *cashier))
	return middleware.NewAuth(secret, time.Hour, users), users
}

func protected(auth *middleware.Auth, roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{auth.Required()}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RoleRequired(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c), "role": middleware.GetRole(c)})
	})
	r.GET("/secure", handlers...)
	return r
}

func call(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_TokenRoundTrip(t *testing.T) {
	auth, _ := newAuth(t)
	token, err := auth.GenerateToken(cashier)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-cashier", claims.UserID)
	assert.Equal(t, models.RoleCashier, claims.Role)

	w := call(protected(auth), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-cashier"`)
	assert.Contains(t, w.Body.String(), `"role":"cashier"`)
}

func TestAuth_RejectsMissingAndForeignTokens(t *testing.T) {
	auth, _ := newAuth(t)
	r := protected(auth)

	assert.Equal(t, http.StatusUnauthorized, call(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "garbage").Code)

	other, err := middleware.NewAuth([]byte("other-secret"), time.Hour, nil).GenerateToken(cashier)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(r, other).Code)
}

func TestAuth_RejectsExpiredToken(t *testing.T) {
	claims := middleware.Claims{
		UserID: cashier.ID,
		Role:   cashier.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	auth, _ := newAuth(t)

	assert.Equal(t, http.StatusUnauthorized, call(protected(auth), token).Code)
}

func TestAuth_RejectsNoneAlgorithm(t *testing.T) {
	claims := middleware.Claims{UserID: "u-owner", Role: models.RoleOwner}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	auth, _ := newAuth(t)

	assert.Equal(t, http.StatusUnauthorized, call(protected(auth), token).Code)
}

func TestAuth_RechecksAccountOnEveryRequest(t *testing.T) {
	ctx := context.Background()
	auth, users := newAuth(t)
	token, err := auth.GenerateToken(cashier)
	require.NoError(t, err)
	r := protected(auth, models.RoleCashier)
	require.Equal(t, http.StatusOK, call(r, token).Code)

	disabled := *cashier
	disabled.IsActive = false
	require.NoError(t, users.UpdateUser(ctx, disabled))
	w := call(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Account is disabled")

	require.NoError(t, users.DeleteUser(ctx, cashier.ID))
	assert.Equal(t, http.StatusUnauthorized, call(r, token).Code)
}

func TestAuth_UsesStoredRole(t *testing.T) {
	auth, users := newAuth(t)
	token, err := auth.GenerateToken(cashier)
	require.NoError(t, err)

	promoted := *cashier
	promoted.Role = models.RoleOwner
	require.NoError(t, users.UpdateUser(context.Background(), promoted))

	w := call(protected(auth, models.RoleOwner), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"owner"`)
}

func TestRoleRequired(t *testing.T) {
	auth, _ := newAuth(t)
	token, err := auth.GenerateToken(cashier)
	require.NoError(t, err)

	w := call(protected(auth, models.RoleOwner, models.RoleWarehouseAdmin), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "owner, warehouse_admin")

	assert.Equal(t, http.StatusOK, call(protected(auth, models.RoleOwner, models.RoleCashier), token).Code)
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok?x=1", "/bad", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "rid-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
	}

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.Equal(t, "rid-1", fields["request_id"])
}

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS())
	r.GET("/api/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/menu", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
