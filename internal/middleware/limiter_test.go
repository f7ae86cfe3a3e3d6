package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paridhan/internal/auth"
	"paridhan/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// 本番と同じ並び。公開ルートはRateLimitのみ、保護ルートはAuthJWTの後ろ。
func newLimiterTestServer(secret string) *echo.Echo {
	e := echo.New()

	e.GET("/public", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit())

	g := e.Group("/mine")
	g.Use(AuthJWT(config.Config{JWTSecret: secret}), RateLimit())
	g.GET("", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func limiterRequest(t *testing.T, e *echo.Echo, path, authHeader, ip string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// 429が出るまで叩く。バースト分を使い切れば必ず出る。
func drainUntilLimited(t *testing.T, e *echo.Echo, path, authHeader, ip string) bool {
	t.Helper()

	for i := 0; i < 50; i++ {
		if limiterRequest(t, e, path, authHeader, ip).Code == http.StatusTooManyRequests {
			return true
		}
	}
	return false
}

// Test: 認証済みはuser単位。同じIPでも別userの初回は429にならない。
func TestRateLimit_PerUser(t *testing.T) {
	e := newLimiterTestServer("limiter-secret")

	tokA, err := auth.Issue(700001, []byte("limiter-secret"), time.Hour, time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	tokB, err := auth.Issue(700002, []byte("limiter-secret"), time.Hour, time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	const sharedIP = "198.51.100.9"

	assert.True(t, drainUntilLimited(t, e, "/mine", "Bearer "+tokA, sharedIP))

	rec := limiterRequest(t, e, "/mine", "Bearer "+tokB, sharedIP)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Test: 公開ルートはIP単位。別IPは巻き込まれない。
func TestRateLimit_PerIP(t *testing.T) {
	e := newLimiterTestServer("limiter-secret")

	assert.True(t, drainUntilLimited(t, e, "/public", "", "198.51.100.10"))

	rec := limiterRequest(t, e, "/public", "", "198.51.100.11")
	assert.Equal(t, http.StatusOK, rec.Code)
}
