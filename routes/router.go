package routes

import (
	"html/template"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Elly0816/Eleazar-Blog/config"
	"github.com/Elly0816/Eleazar-Blog/controllers"
	"github.com/Elly0816/Eleazar-Blog/middleware"
	"github.com/Elly0816/Eleazar-Blog/utils"
)

// SetupRouter wires routes, middlewares, templates, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(utils.Ginzap(utils.Logger, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(utils.Logger, false))
	} else {
		r.Use(gin.Recovery())
	}

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.SetFuncMap(template.FuncMap{
		// Post bodies and comments are sanitized on write; render them as-is.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"excerpt":  func(s string) string { return utils.Excerpt(s, 200) },
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	r.Use(middleware.CurrentUser(db))

	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(db)
	pageController := controllers.NewPageController()

	r.GET("/", postController.Index)

	r.GET("/register", authController.RegisterPage)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.LoginPage)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	r.GET("/post/:id", postController.Show)
	r.POST("/post/:id", middleware.LoginRequired(), postController.CreateComment)

	r.GET("/about", pageController.About)
	r.GET("/contact", pageController.Contact)

	admin := r.Group("")
	admin.Use(middleware.AdminOnly())
	admin.GET("/new-post", postController.NewPostPage)
	admin.POST("/new-post", postController.CreatePost)
	admin.GET("/edit-post/:id", postController.EditPostPage)
	admin.POST("/edit-post/:id", postController.UpdatePost)
	admin.GET("/delete/:id", postController.DeletePost)

	return r
}
