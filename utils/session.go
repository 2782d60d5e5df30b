package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Elly0816/Eleazar-Blog/config"
	"github.com/Elly0816/Eleazar-Blog/models"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "blog_session"

	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// SessionClaims are the JWT claims inside the session cookie. The token is
// only half of a session: the SessionID must also be live in the server-side
// registry.
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// StartSession associates the client with a user identity. remember extends
// the session past the browser session via the cookie Max-Age.
func StartSession(ctx *gin.Context, user models.User, remember bool) error {
	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}

	sid := uuid.NewString()
	token, err := signSessionToken(user.ID, sid, ttl)
	if err != nil {
		return err
	}
	RegisterSession(sid, user.ID, ttl)

	maxAge := 0 // browser-session cookie
	if remember {
		maxAge = int(ttl / time.Second)
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
	return nil
}

// CurrentSessionUser resolves the active session to its user, or returns
// ok=false for anonymous clients, expired tokens, and revoked sessions.
func CurrentSessionUser(ctx *gin.Context, db *gorm.DB) (*models.User, bool) {
	raw, err := ctx.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return nil, false
	}
	claims, err := parseSessionToken(raw)
	if err != nil {
		return nil, false
	}
	userID, live := LookupSession(claims.SessionID)
	if !live || userID != claims.UserID {
		return nil, false
	}
	var user models.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// EndSession revokes the server-side session and clears the cookie.
func EndSession(ctx *gin.Context) {
	if raw, err := ctx.Cookie(SessionCookieName); err == nil && raw != "" {
		if claims, err := parseSessionToken(raw); err == nil {
			RevokeSession(claims.SessionID)
		}
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

func signSessionToken(userID uint, sid string, ttl time.Duration) (string, error) {
	cfg := config.Get()
	claims := SessionClaims{
		UserID:    userID,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SecretKey))
}

func parseSessionToken(tokenStr string) (*SessionClaims, error) {
	cfg := config.Get()
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}
