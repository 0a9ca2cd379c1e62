package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ownerEcho() *gin.Engine {
	r := gin.New()
	r.GET("/whoami", LanguageMiddleware(), AuthMiddleware("X-Auth-Subject"), func(c *gin.Context) {
		c.String(http.StatusOK, GetOwner(c))
	})
	return r
}

func bearer(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("gateway-secret"))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	cases := map[string]struct {
		headers map[string]string
		status  int
		owner   string
	}{
		"subject header": {
			headers: map[string]string{"X-Auth-Subject": " alice "},
			status:  http.StatusOK,
			owner:   "alice",
		},
		"header wins over token": {
			headers: map[string]string{
				"X-Auth-Subject": "alice",
				"Authorization":  bearer(t, jwt.MapClaims{"sub": "bob"}),
			},
			status: http.StatusOK,
			owner:  "alice",
		},
		"sub claim": {
			headers: map[string]string{"Authorization": bearer(t, jwt.MapClaims{"sub": "bob"})},
			status:  http.StatusOK,
			owner:   "bob",
		},
		"cognito username claim": {
			headers: map[string]string{"Authorization": bearer(t, jwt.MapClaims{"cognito:username": "carol"})},
			status:  http.StatusOK,
			owner:   "carol",
		},
		"username claim": {
			headers: map[string]string{"Authorization": bearer(t, jwt.MapClaims{"sub": " ", "username": "dave"})},
			status:  http.StatusOK,
			owner:   "dave",
		},
		"no identity": {
			status: http.StatusUnauthorized,
		},
		"token without subject": {
			headers: map[string]string{"Authorization": bearer(t, jwt.MapClaims{"scope": "read"})},
			status:  http.StatusUnauthorized,
		},
		"garbage token": {
			headers: map[string]string{"Authorization": "Bearer not.a.jwt"},
			status:  http.StatusUnauthorized,
		},
		"basic auth": {
			headers: map[string]string{"Authorization": "Basic YWxpY2U6cHc="},
			status:  http.StatusUnauthorized,
		},
	}

	router := ownerEcho()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				require.Equal(t, tc.owner, rec.Body.String())
			} else {
				require.Contains(t, rec.Body.String(), `"code":401`)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(""))
	r.GET("/tasks", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/anything/at/all", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLanguageMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", LanguageMiddleware(), func(c *gin.Context) { c.String(http.StatusOK, GetLang(c)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "en", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, "fr-FR", rec.Body.String())
}

func TestGinZapMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(GinZapMiddleware(zap.New(core)))
	r.GET("/tasks/:taskId", AuthMiddleware("X-Auth-Subject"), func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks/t-1", nil)
	req.Header.Set("X-Auth-Subject", "alice")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.Equal(t, "/tasks/:taskId", fields["route"])
	require.Equal(t, "alice", fields["owner_id"])
	require.EqualValues(t, http.StatusInternalServerError, fields["status"])
}

func TestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/metrics", MetricsHandler())
	r.GET("/tasks/:taskId", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks/t-42", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.True(t, strings.Contains(body, `route="/tasks/:taskId"`))
	require.NotContains(t, body, "t-42")
}
