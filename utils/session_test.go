package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Elly0816/Eleazar-Blog/models"
)

var sessionTestDB uint64

func newSessionTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:session_test_%d?mode=memory&cache=shared", atomic.AddUint64(&sessionTestDB, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func contextWithCookies(cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		ctx.Request.AddCookie(c)
	}
	return ctx, rec
}

func TestSessionLifecycle(t *testing.T) {
	db := newSessionTestDB(t)
	user := models.User{Email: "a@x.com", Password: "irrelevant", Name: "A"}
	require.NoError(t, db.Create(&user).Error)

	// Start a session and capture the cookie.
	startCtx, startRec := contextWithCookies(nil)
	require.NoError(t, StartSession(startCtx, user, false))
	cookies := startRec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, SessionCookieName, cookies[0].Name)

	// The cookie resolves back to the user.
	ctx, _ := contextWithCookies(cookies)
	got, ok := CurrentSessionUser(ctx, db)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)

	// Ending the session revokes it server-side: the old cookie is dead even
	// though the token inside has not expired.
	endCtx, _ := contextWithCookies(cookies)
	EndSession(endCtx)
	ctx2, _ := contextWithCookies(cookies)
	_, ok = CurrentSessionUser(ctx2, db)
	assert.False(t, ok)
}

func TestCurrentSessionUserAnonymous(t *testing.T) {
	db := newSessionTestDB(t)
	ctx, _ := contextWithCookies(nil)
	_, ok := CurrentSessionUser(ctx, db)
	assert.False(t, ok)
}

func TestCurrentSessionUserGarbageCookie(t *testing.T) {
	db := newSessionTestDB(t)
	ctx, _ := contextWithCookies([]*http.Cookie{{Name: SessionCookieName, Value: "not.a.token"}})
	_, ok := CurrentSessionUser(ctx, db)
	assert.False(t, ok)
}

func TestStartSessionRememberSetsMaxAge(t *testing.T) {
	db := newSessionTestDB(t)
	user := models.User{Email: "r@x.com", Password: "irrelevant", Name: "R"}
	require.NoError(t, db.Create(&user).Error)

	ctx, rec := contextWithCookies(nil)
	require.NoError(t, StartSession(ctx, user, true))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, int(rememberTTL.Seconds()), cookies[0].MaxAge)

	// Without remember the cookie lives only for the browser session.
	ctx2, rec2 := contextWithCookies(nil)
	require.NoError(t, StartSession(ctx2, user, false))
	cookies2 := rec2.Result().Cookies()
	require.NotEmpty(t, cookies2)
	assert.Equal(t, 0, cookies2[0].MaxAge)
}
