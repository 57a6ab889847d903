package http

import (
	"errors"
	"fmt"
	"net/http"

	"postflow/internal/repo/persistent"
	"postflow/internal/usecase"
	"postflow/pkg/logger"
	"postflow/pkg/upload"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// Home renders the landing page with the total post count (0 when the store
// is unreachable).
func (h *PostHandler) Home(c *gin.Context) {
	count := h.postUseCase.CountPosts(c.Request.Context())
	c.HTML(http.StatusOK, "home.html", gin.H{"PostsCount": count})
}

// ListPosts renders the feed, newest first.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts := h.postUseCase.ListPosts(c.Request.Context())
	c.HTML(http.StatusOK, "index.html", gin.H{"Posts": posts})
}

func (h *PostHandler) NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", nil)
}

type CreatePostRequest struct {
	Username string `form:"username" binding:"required"`
	Content  string `form:"content" binding:"required"`
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Invalid create form: %v", err)
		c.Redirect(http.StatusFound, "/posts/new")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No file field in the form; the post is text-only.
		file = nil
	}

	_, err = h.postUseCase.CreatePost(c.Request.Context(), usecase.CreatePostInput{
		Username:  req.Username,
		Content:   req.Content,
		Image:     file,
		UserIP:    c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		if errors.Is(err, upload.ErrFileTooLarge) {
			h.renderFileTooLarge(c, "/posts/new")
			return
		}
		if errors.Is(err, upload.ErrUnsupportedType) {
			h.renderUploadError(c, "/posts/new")
			return
		}
		h.logger.Error("Failed to create post: %v", err)
		c.Redirect(http.StatusFound, "/posts/new")
		return
	}

	c.Redirect(http.StatusFound, "/posts")
}

// ShowPost renders the detail view; every render also records a view.
// An unresolvable id falls back to the feed instead of a not-found page.
func (h *PostHandler) ShowPost(c *gin.Context) {
	id := c.Param("id")
	post, err := h.postUseCase.ViewPost(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, persistent.ErrPostNotFound) {
			h.logger.Error("Failed to fetch post %s: %v", id, err)
		}
		c.Redirect(http.StatusFound, "/posts")
		return
	}

	c.HTML(http.StatusOK, "show.html", gin.H{"Post": post})
}

func (h *PostHandler) EditPostForm(c *gin.Context) {
	id := c.Param("id")
	post, err := h.postUseCase.GetPost(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, persistent.ErrPostNotFound) {
			h.logger.Error("Failed to fetch post %s for edit: %v", id, err)
		}
		c.Redirect(http.StatusFound, "/posts")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{"Post": post})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}

	_, err = h.postUseCase.UpdatePost(c.Request.Context(), id, c.PostForm("content"), file)
	if err != nil {
		if errors.Is(err, upload.ErrFileTooLarge) {
			h.renderFileTooLarge(c, fmt.Sprintf("/posts/%s/edit", id))
			return
		}
		if errors.Is(err, upload.ErrUnsupportedType) {
			h.renderUploadError(c, fmt.Sprintf("/posts/%s/edit", id))
			return
		}
		if !errors.Is(err, persistent.ErrPostNotFound) {
			h.logger.Error("Failed to update post %s: %v", id, err)
		}
	}

	c.Redirect(http.StatusFound, "/posts")
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")
	if err := h.postUseCase.DeletePost(c.Request.Context(), id); err != nil {
		h.logger.Error("Failed to delete post %s: %v", id, err)
	}

	c.Redirect(http.StatusFound, "/posts")
}

// renderFileTooLarge shows the dedicated oversized-upload page. The back link
// is scoped to the form the user came from.
func (h *PostHandler) renderFileTooLarge(c *gin.Context, backURL string) {
	c.HTML(http.StatusBadRequest, "file_too_large.html", gin.H{"BackURL": backURL})
}

// renderUploadError shows the rejected-upload page with the validation message.
func (h *PostHandler) renderUploadError(c *gin.Context, backURL string) {
	c.HTML(http.StatusBadRequest, "upload_error.html", gin.H{
		"Message": upload.ErrUnsupportedType.Error(),
		"BackURL": backURL,
	})
}
