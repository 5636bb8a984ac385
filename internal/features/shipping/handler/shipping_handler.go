package handler

import (
	"errors"
	"net/http"
	"strings"

	"frete-service/internal/core/logger"
	"frete-service/internal/features/shipping/domain"
	"frete-service/internal/features/shipping/ports"
	"frete-service/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgIncompleteData   = "Dados incompletos para cálculo de frete"
	msgInvalidQuantity  = "Quantidade inválida no carrinho"
	msgInvalidBody      = "Requisição inválida"
	msgCalculationError = "Erro ao calcular opções de frete"
	msgInvalidProductID = "Produto inválido"
	msgInvalidWeight    = "Peso deve ser maior que zero e no máximo 1000 kg"
	msgStoreUnavailable = "Cadastro de pesos indisponível"
	msgInternalError    = "Erro interno do servidor"
)

// ShippingHandler handles HTTP requests for shipping quotes.
type ShippingHandler struct {
	service ports.ShippingService
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(s ports.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service: s,
	}
}

// Register mounts the shipping routes on r.
func (h *ShippingHandler) Register(r fiber.Router) {
	g := r.Group("/api/shipping")
	g.Post("/calculate", h.Calculate)
	g.Get("/regions/:state", h.GetRegion)
	g.Get("/weights/:productId", h.GetWeight)
	g.Put("/weights/:productId", h.SetWeight)
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Error: msg,
		RayID: rayID(c),
	})
}

// Calculate handles POST /api/shipping/calculate.
// @Summary Calculate shipping options
// @Description Returns the Economic, Standard and Express options for a cart and destination state. The postal code is accepted but not used for pricing.
// @Tags Shipping
// @Accept json
// @Produce json
// @Param request body CalculateShippingRequest true "Cart and destination"
// @Success 200 {object} CalculateShippingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shipping/calculate [post]
func (h *ShippingHandler) Calculate(c *fiber.Ctx) error {
	var body CalculateShippingRequest
	if err := c.BodyParser(&body); err != nil {
		return errorJSON(c, http.StatusBadRequest, msgInvalidBody)
	}

	req := body.toDomain()
	if err := req.Validate(); err != nil {
		return h.quoteError(c, err)
	}

	result, err := h.service.QuoteShipping(c.UserContext(), req)
	if err != nil {
		return h.quoteError(c, err)
	}

	return c.Status(http.StatusOK).JSON(newCalculateShippingResponse(result))
}

func (h *ShippingHandler) quoteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingDestination), errors.Is(err, domain.ErrEmptyCart):
		return errorJSON(c, http.StatusBadRequest, msgIncompleteData)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return errorJSON(c, http.StatusBadRequest, msgInvalidQuantity)
	}

	logger.Get().Error("Failed to calculate shipping",
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return errorJSON(c, http.StatusInternalServerError, msgCalculationError)
}

// GetRegion handles GET /api/shipping/regions/{state}.
// @Summary Resolve the pricing region of a state
// @Description Unknown codes resolve to southeast.
// @Tags Shipping
// @Produce json
// @Param state path string true "Two-letter state code"
// @Success 200 {object} RegionResponse
// @Router /api/shipping/regions/{state} [get]
func (h *ShippingHandler) GetRegion(c *fiber.Ctx) error {
	state := strings.ToUpper(strings.TrimSpace(c.Params("state")))
	return c.Status(http.StatusOK).JSON(RegionResponse{
		State:  state,
		Region: string(h.service.ResolveRegion(state)),
	})
}

// GetWeight handles GET /api/shipping/weights/{productId}.
// @Summary Get the unit weight used for a product
// @Tags Weights
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} ports.ProductWeight
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shipping/weights/{productId} [get]
func (h *ShippingHandler) GetWeight(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return errorJSON(c, http.StatusBadRequest, msgInvalidProductID)
	}

	weight, err := h.service.GetProductWeight(c.UserContext(), productID)
	if err != nil {
		logger.Get().Error("Failed to get product weight", zap.Int("product_id", productID), zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.Status(http.StatusOK).JSON(weight)
}

// SetWeight handles PUT /api/shipping/weights/{productId}.
// @Summary Override the unit weight of a product
// @Tags Weights
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body SetWeightRequest true "Weight in kg"
// @Success 200 {object} ports.ProductWeight
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shipping/weights/{productId} [put]
func (h *ShippingHandler) SetWeight(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return errorJSON(c, http.StatusBadRequest, msgInvalidProductID)
	}

	var body SetWeightRequest
	if err := c.BodyParser(&body); err != nil {
		return errorJSON(c, http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.service.SetProductWeight(c.UserContext(), productID, body.WeightKg); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWeight):
			return errorJSON(c, http.StatusBadRequest, msgInvalidWeight)
		case errors.Is(err, service.ErrWeightStoreUnavailable):
			return errorJSON(c, http.StatusServiceUnavailable, msgStoreUnavailable)
		}
		logger.Get().Error("Failed to set product weight", zap.Int("product_id", productID), zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.Status(http.StatusOK).JSON(ports.ProductWeight{
		ProductID: productID,
		WeightKg:  body.WeightKg,
		Source:    ports.WeightSourceOverride,
	})
}
