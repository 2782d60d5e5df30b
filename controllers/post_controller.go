package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Elly0816/Eleazar-Blog/middleware"
	"github.com/Elly0816/Eleazar-Blog/models"
	"github.com/Elly0816/Eleazar-Blog/utils"
)

// PostController manages the post list, post pages, comments, and the
// admin-guarded post CRUD.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a PostController.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// postDateFormat matches the display strings already stored by earlier
// deployments, e.g. "August 30, 2026".
const postDateFormat = "January 2, 2006"

// Index renders the post list, newest first.
func (p *PostController) Index(ctx *gin.Context) {
	var posts []models.Post
	if err := p.db.Preload("Author").Order("id DESC").Find(&posts).Error; err != nil {
		serverError(ctx, "failed to list posts", err)
		return
	}
	data := baseData(ctx)
	data["Posts"] = posts
	ctx.HTML(http.StatusOK, "index.html", data)
}

// Show renders a single post with the comments that belong to it. An unknown
// id answers 404 rather than faulting on the missing row.
func (p *PostController) Show(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}

	var comments []models.Comment
	if err := p.db.Where("post_id = ?", post.ID).Preload("Author").Order("id ASC").Find(&comments).Error; err != nil {
		serverError(ctx, "failed to load comments", err)
		return
	}

	data := baseData(ctx)
	data["Post"] = post
	data["Comments"] = comments
	ctx.HTML(http.StatusOK, "post.html", data)
}

// CreateComment attaches a comment to a post. The route is login-guarded, so
// a session user is always present here.
func (p *PostController) CreateComment(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}
	user, _ := middleware.SessionUser(ctx)

	text := utils.Sanitize(strings.TrimSpace(ctx.PostForm("comment")))
	if text == "" {
		utils.Flash(ctx, "Comment cannot be empty.")
		ctx.Redirect(http.StatusFound, "/post/"+strconv.Itoa(int(post.ID)))
		return
	}

	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
	}
	if err := p.db.Create(&comment).Error; err != nil {
		serverError(ctx, "failed to create comment", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/post/"+strconv.Itoa(int(post.ID)))
}

// NewPostPage renders an empty post form.
func (p *PostController) NewPostPage(ctx *gin.Context) {
	data := baseData(ctx)
	data["Form"] = postForm{}
	data["Errors"] = map[string]string{}
	ctx.HTML(http.StatusOK, "make-post.html", data)
}

// CreatePost inserts a new post authored by the session user. The publication
// date is fixed to today and never recalculated afterwards.
func (p *PostController) CreatePost(ctx *gin.Context) {
	form, errs := bindPostForm(ctx)
	if len(errs) > 0 {
		data := baseData(ctx)
		data["Form"] = form
		data["Errors"] = errs
		ctx.HTML(http.StatusOK, "make-post.html", data)
		return
	}

	user, _ := middleware.SessionUser(ctx)
	authorID := user.ID
	post := models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     time.Now().Format(postDateFormat),
		Body:     utils.Sanitize(form.Body),
		ImgURL:   form.ImgURL,
		AuthorID: &authorID,
	}
	if err := p.db.Create(&post).Error; err != nil {
		serverError(ctx, "failed to create post", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// EditPostPage renders the post form prefilled with the current field values.
func (p *PostController) EditPostPage(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}
	data := baseData(ctx)
	data["Form"] = postForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		ImgURL:   post.ImgURL,
		Body:     post.Body,
	}
	data["Post"] = post
	data["IsEdit"] = true
	data["Errors"] = map[string]string{}
	ctx.HTML(http.StatusOK, "make-post.html", data)
}

// UpdatePost changes exactly the four editable fields; id, author, and date
// stay as created.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}

	form, errs := bindPostForm(ctx)
	if len(errs) > 0 {
		data := baseData(ctx)
		data["Form"] = form
		data["Errors"] = errs
		data["Post"] = post
		data["IsEdit"] = true
		ctx.HTML(http.StatusOK, "make-post.html", data)
		return
	}

	updates := map[string]interface{}{
		"title":    form.Title,
		"subtitle": form.Subtitle,
		"img_url":  form.ImgURL,
		"body":     utils.Sanitize(form.Body),
	}
	if err := p.db.Model(post).Updates(updates).Error; err != nil {
		serverError(ctx, "failed to update post", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/post/"+strconv.Itoa(int(post.ID)))
}

// DeletePost removes a post and returns to the list. Comments keep their
// rows; nothing renders them once the post is gone.
func (p *PostController) DeletePost(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}
	if err := p.db.Delete(post).Error; err != nil {
		serverError(ctx, "failed to delete post", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// loadPost resolves the :id path parameter to a post, answering 404 for
// malformed ids and missing rows.
func (p *PostController) loadPost(ctx *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}
	var post models.Post
	if err := p.db.Preload("Author").First(&post, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.AbortWithStatus(http.StatusNotFound)
			return nil, false
		}
		serverError(ctx, "failed to load post", err)
		return nil, false
	}
	return &post, true
}

type postForm struct {
	Title    string
	Subtitle string
	ImgURL   string
	Body     string
}

// bindPostForm reads and validates the shared create/edit form. Validation
// failures re-render the form rather than redirecting, so entered values are
// kept.
func bindPostForm(ctx *gin.Context) (postForm, map[string]string) {
	form := postForm{
		Title:    strings.TrimSpace(ctx.PostForm("title")),
		Subtitle: strings.TrimSpace(ctx.PostForm("subtitle")),
		ImgURL:   strings.TrimSpace(ctx.PostForm("img_url")),
		Body:     ctx.PostForm("body"),
	}

	errs := map[string]string{}
	if form.Title == "" {
		errs["title"] = "Title is required."
	}
	if form.Subtitle == "" {
		errs["subtitle"] = "Subtitle is required."
	}
	if strings.TrimSpace(form.Body) == "" {
		errs["body"] = "Body is required."
	}
	if form.ImgURL == "" {
		errs["img_url"] = "Image URL is required."
	} else if u, err := url.Parse(form.ImgURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs["img_url"] = "Image URL must be a valid http(s) URL."
	}
	return form, errs
}
