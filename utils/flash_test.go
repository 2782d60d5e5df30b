package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashConsumedExactlyOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Flash(ctx, "Password Incorrect! Please try again.")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, FlashCookieName, cookies[0].Name)

	rec2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(rec2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(cookies[0])
	assert.Equal(t, "Password Incorrect! Please try again.", ConsumeFlash(ctx2))

	// Consuming clears the cookie.
	cleared := rec2.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, FlashCookieName, cleared[0].Name)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestConsumeFlashEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", ConsumeFlash(ctx))
}
