package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Elly0816/Eleazar-Blog/config"
	"github.com/Elly0816/Eleazar-Blog/models"
	"github.com/Elly0816/Eleazar-Blog/utils"
)

// ContextUserKey is the key used to store the session user in Gin context.
const ContextUserKey = "current_user"

// CurrentUser resolves the session cookie to a user on every request and
// stores it in the context. Anonymous requests proceed with no user set.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user, ok := utils.CurrentSessionUser(ctx, db); ok {
			ctx.Set(ContextUserKey, user)
		}
		ctx.Next()
	}
}

// SessionUser returns the user loaded by CurrentUser, if any.
func SessionUser(ctx *gin.Context) (*models.User, bool) {
	v, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// LoginRequired aborts anonymous requests with 401.
func LoginRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := SessionUser(ctx); !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Next()
	}
}

// AdminOnly guards the post-management routes. With no ADMIN_EMAILS
// configured it admits any logged-in user, matching the behavior this blog
// always had; configuring the list restricts management to those accounts.
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := SessionUser(ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !config.Get().IsAdmin(user.Email) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Next()
	}
}
