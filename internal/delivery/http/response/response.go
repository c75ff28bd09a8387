// Package response defines the wire payloads of the public API. The shapes
// (and the Portuguese field names) are the API contract: clients depend on
// them verbatim.
package response

import (
	"github.com/labstack/echo/v4"

	"usuarios/internal/domain/entity"
)

// User is the public projection of an account. It deliberately has no
// password field: the hash can never be serialized through this package.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// Message is the generic success envelope: {"mensagem": ...}.
type Message struct {
	Message string `json:"mensagem"`
}

// Created is the registration success envelope: {"mensagem": ..., "id": ...}.
type Created struct {
	Message string `json:"mensagem"`
	ID      int64  `json:"id"`
}

// Error is the error envelope used by 400/404/500 responses: {"erro": ...}.
type Error struct {
	Error string `json:"erro"`
}

// Login is the login envelope. On success Sucesso is true and Usuario is
// set; on failure Sucesso is false and Usuario is omitted.
type Login struct {
	Success bool   `json:"sucesso"`
	Message string `json:"mensagem"`
	User    *User  `json:"usuario,omitempty"`
}

// ServiceInfo is the discovery payload served at GET /.
type ServiceInfo struct {
	Message   string            `json:"mensagem"`
	Version   string            `json:"versao"`
	Endpoints map[string]string `json:"endpoints"`
}

// FromUser maps a domain entity to its public projection.
func FromUser(user *entity.User) *User {
	if user == nil {
		return nil
	}

	return &User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// FromUsers maps a slice of entities, preserving store order.
func FromUsers(users []*entity.User) []*User {
	out := make([]*User, 0, len(users))
	for _, user := range users {
		out = append(out, FromUser(user))
	}

	return out
}

// WriteMessage writes a {"mensagem": ...} body.
func WriteMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Message: message})
}

// WriteCreated writes a {"mensagem": ..., "id": ...} body.
func WriteCreated(c echo.Context, statusCode int, message string, id int64) error {
	return c.JSON(statusCode, Created{Message: message, ID: id})
}

// WriteError writes a {"erro": ...} body.
func WriteError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Error{Error: message})
}

// WriteLoginSuccess writes the successful login envelope.
func WriteLoginSuccess(c echo.Context, statusCode int, message string, user *entity.User) error {
	return c.JSON(statusCode, Login{
		Success: true,
		Message: message,
		User:    FromUser(user),
	})
}

// WriteLoginFailure writes the generic authentication-failure envelope.
func WriteLoginFailure(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Login{
		Success: false,
		Message: message,
	})
}
