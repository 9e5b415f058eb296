package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
)

// storeError respuesta para fallas del almacén (red, BD caída, fila malformada).
// El cuerpo es genérico: el detalle interno (DSN, hosts, causas de red) nunca
// llega al cliente. No se reintenta automáticamente: la capa de presentación
// reemite la llamada en la siguiente acción del usuario.
func storeError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "STORE_UNAVAILABLE",
		Message: "almacén de datos no disponible; intente de nuevo",
	})
}
