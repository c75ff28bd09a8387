// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"usuarios/internal/delivery/http/response"
	domainerrors "usuarios/internal/domain/errors"
	"usuarios/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the POST /usuarios body.
type registerRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// updateRequest is the PUT /usuarios/:id body. Senha is optional; when it is
// absent (or empty) the stored credential is preserved.
type updateRequest struct {
	Name     string  `json:"nome" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Password *string `json:"senha"`
}

// UserHandler holds dependencies for the account endpoints.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles account creation.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WriteCreated(c, http.StatusOK, "Usuário cadastrado com sucesso!", output.ID)
}

// Login handles authentication.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrMissingCredentials)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WriteLoginSuccess(c, http.StatusOK, "Login realizado com sucesso!", output.User)
}

// List returns every account as a bare array of {id, nome, email}.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromUsers(users))
}

// Get returns a single account by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromUser(user))
}

// Update modifies an account; senha is optional.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrNameEmailRequired)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrNameEmailRequired)
	}

	input := &usecase.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.uc.Update(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.WriteMessage(c, http.StatusOK, "Usuário atualizado com sucesso!")
}

// Delete removes an account by id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.WriteMessage(c, http.StatusOK, "Usuário deletado com sucesso!")
}

// parseID reads the :id path parameter. A non-numeric id can never match a
// row, so it reports the same not-found outcome as a missing one.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrUserNotFound.WrapMessage("invalid id parameter")
	}

	return id, nil
}
