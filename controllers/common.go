package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Elly0816/Eleazar-Blog/middleware"
	"github.com/Elly0816/Eleazar-Blog/utils"
)

// baseData assembles the values every template expects: the session user (if
// any), a pending flash message, and the footer year.
func baseData(ctx *gin.Context) gin.H {
	data := gin.H{
		"Year":  time.Now().Year(),
		"Flash": utils.ConsumeFlash(ctx),
	}
	if user, ok := middleware.SessionUser(ctx); ok {
		data["CurrentUser"] = user
	}
	return data
}

// serverError logs a storage or crypto failure and answers 500. Writes in
// gorm run as single statements, so a failed mutation leaves no partial row
// behind.
func serverError(ctx *gin.Context, msg string, err error) {
	if utils.Sugar != nil {
		utils.Sugar.Errorf("%s: %v", msg, err)
	}
	ctx.String(http.StatusInternalServerError, "Internal Server Error")
	ctx.Abort()
}
