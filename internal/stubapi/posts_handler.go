package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studytech/studytech-client/internal/core/domain"
)

type postsHandler struct {
	store *Store
}

func (h *postsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListPosts())
}

func (h *postsHandler) Get(c echo.Context) error {
	post, err := h.store.GetPost(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *postsHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.store.CreatePost(domain.Post{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		CreatedAt:   req.CreatedAt,
	})
	if err != nil {
		return err
	}

	PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *postsHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.store.UpdatePost(c.Param("id"), domain.Post{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *postsHandler) Delete(c echo.Context) error {
	if err := h.store.DeletePost(c.Param("id")); err != nil {
		DeletesTotal.WithLabelValues("posts", "missing").Inc()
		return err
	}
	DeletesTotal.WithLabelValues("posts", "done").Inc()
	return c.NoContent(http.StatusNoContent)
}
