package handler

import (
	"net/http"

	"usuarios/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// ServiceInfo serves the discovery document at the root path so a client can
// see the service is up and which endpoints exist.
func ServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, response.ServiceInfo{
		Message: "API de Usuários funcionando!",
		Version: apiVersion,
		Endpoints: map[string]string{
			"cadastro":  "POST /usuarios",
			"login":     "POST /login",
			"listar":    "GET /usuarios",
			"buscar":    "GET /usuarios/:id",
			"atualizar": "PUT /usuarios/:id",
			"deletar":   "DELETE /usuarios/:id",
		},
	})
}

// HealthCheck is a simple health check endpoint.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
