package utils

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FlashCookieName carries one-shot notifications across a redirect.
const FlashCookieName = "blog_flash"

// Flash queues a message to be shown on the next rendered page.
func Flash(ctx *gin.Context, message string) {
	encoded := base64.URLEncoding.EncodeToString([]byte(message))
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(FlashCookieName, encoded, 300, "/", "", false, true)
}

// ConsumeFlash returns the queued message, if any, and clears it so it is
// shown exactly once.
func ConsumeFlash(ctx *gin.Context) string {
	raw, err := ctx.Cookie(FlashCookieName)
	if err != nil || raw == "" {
		return ""
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(FlashCookieName, "", -1, "/", "", false, true)
	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return ""
	}
	return string(decoded)
}
