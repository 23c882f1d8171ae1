package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdramirez/facturas-api/internal/model"
	"github.com/jdramirez/facturas-api/internal/service"
)

// FacturaHandler handles HTTP requests for factura queries.
type FacturaHandler struct {
	facturas service.FacturaService
	logger   *zap.Logger
}

// NewFacturaHandler creates a new factura handler.
func NewFacturaHandler(facturas service.FacturaService, logger *zap.Logger) *FacturaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacturaHandler{
		facturas: facturas,
		logger:   logger,
	}
}

// RegisterRoutes registers the handler's routes with the given router.
func (h *FacturaHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/facturas")
	api.GET("/cliente/:clienteId", h.GetFacturasByCliente)
	api.GET("/health", h.Health)
}

// GetFacturasByCliente handles the client invoice query.
// @Summary Facturas de un cliente
// @Description Devuelve las facturas vigentes (no anuladas) de un cliente, ordenadas por fecha descendente, con totales
// @Tags facturas
// @Produce json
// @Param clienteId path int true "ID del cliente"
// @Success 200 {object} model.FacturasResponse "Facturas del cliente"
// @Failure 400 {object} model.ErrorResponse "ID de cliente inválido"
// @Failure 404 {object} model.ErrorResponse "Cliente sin facturas vigentes"
// @Failure 500 {object} model.ErrorResponse "Error interno"
// @Router /api/facturas/cliente/{clienteId} [get]
func (h *FacturaHandler) GetFacturasByCliente(c *gin.Context) {
	clienteID, err := strconv.Atoi(c.Param("clienteId"))
	if err != nil || clienteID <= 0 {
		h.logger.Warn("clienteId inválido", zap.String("cliente_id", c.Param("clienteId")))
		respondBadRequest(c, "El ID del cliente debe ser mayor a 0")
		return
	}

	response, err := h.facturas.GetFacturasByClienteID(c.Request.Context(), clienteID)
	if err != nil {
		h.logger.Error("error al obtener facturas",
			zap.Int("cliente_id", clienteID),
			zap.Error(err),
		)
		respondInternalServerError(c, "Error interno del servidor al procesar la solicitud")
		return
	}

	if response.TotalFacturas == 0 {
		respondNotFound(c, fmt.Sprintf("No se encontraron facturas para el cliente %d", clienteID))
		return
	}

	respondOK(c, response)
}

// Health reports service liveness.
// @Summary Health check
// @Tags facturas
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /api/facturas/health [get]
func (h *FacturaHandler) Health(c *gin.Context) {
	respondOK(c, model.HealthResponse{
		Status:    "API de Facturas funcionando correctamente",
		Timestamp: time.Now().UTC(),
	})
}
