package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studytech/studytech-client/internal/core/domain"
)

type usersHandler struct {
	store *Store
}

// List returns every account, password digests included. Clients verify
// credentials against this listing; the platform has no token exchange.
func (h *usersHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListUsers())
}

func (h *usersHandler) Get(c echo.Context) error {
	user, err := h.store.GetUser(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *usersHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.store.CreateUser(domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	UsersRegisteredTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *usersHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.store.UpdateUser(c.Param("id"), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *usersHandler) Delete(c echo.Context) error {
	// The body names the acting user; the platform accepts and ignores
	// it, so the stub only requires it to be well formed.
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.store.DeleteUser(c.Param("id")); err != nil {
		DeletesTotal.WithLabelValues("users", "missing").Inc()
		return err
	}
	DeletesTotal.WithLabelValues("users", "done").Inc()
	return c.NoContent(http.StatusNoContent)
}
