package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Elly0816/Eleazar-Blog/models"
	"github.com/Elly0816/Eleazar-Blog/utils"
)

// AuthController handles registration, login, and logout.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// RegisterPage renders the registration form.
func (a *AuthController) RegisterPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", baseData(ctx))
}

// Register creates a new account from the submitted form and logs it in.
// Registering an email that already exists redirects to the login page with
// a flash instead of creating a second user.
func (a *AuthController) Register(ctx *gin.Context) {
	email := strings.TrimSpace(ctx.PostForm("email"))
	password := ctx.PostForm("password")
	name := strings.TrimSpace(ctx.PostForm("name"))

	if email == "" || password == "" || name == "" {
		utils.Flash(ctx, "All fields are required.")
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	var existing models.User
	if err := a.db.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.Flash(ctx, "You have already registered with that email. Log in instead")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		serverError(ctx, "failed to hash password", err)
		return
	}

	user := models.User{
		Email:    email,
		Password: hash,
		Name:     name,
	}
	if err := a.db.Create(&user).Error; err != nil {
		// Covers the duplicate-email race that slips past the existence check.
		serverError(ctx, "failed to create user", err)
		return
	}

	if err := utils.StartSession(ctx, user, true); err != nil {
		serverError(ctx, "failed to start session", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// LoginPage renders the login form.
func (a *AuthController) LoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", baseData(ctx))
}

// Login authenticates the submitted credentials and starts a session.
func (a *AuthController) Login(ctx *gin.Context) {
	email := strings.TrimSpace(ctx.PostForm("email"))
	password := ctx.PostForm("password")

	var user models.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Flash(ctx, "This email does not exist! Please try again.")
			ctx.Redirect(http.StatusFound, "/login")
			return
		}
		serverError(ctx, "failed to look up user", err)
		return
	}

	if !utils.CheckPassword(user.Password, password) {
		utils.Flash(ctx, "Password Incorrect! Please try again.")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	if err := utils.StartSession(ctx, user, true); err != nil {
		serverError(ctx, "failed to start session", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// Logout ends the session and returns to the post list.
func (a *AuthController) Logout(ctx *gin.Context) {
	utils.EndSession(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
