package handler

import (
	"frete-service/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// CartItemRequest is a cart line in the calculate request.
type CartItemRequest struct {
	ProductID int `json:"productId" example:"3"`
	Quantity  int `json:"quantity" example:"2"`
}

// CalculateShippingRequest is the body of POST /api/shipping/calculate.
type CalculateShippingRequest struct {
	Items []CartItemRequest `json:"items"`
	// PostalCode is accepted but not used for pricing.
	PostalCode string `json:"postalCode" example:"01310-100"`
	State      string `json:"state" example:"SP"`
	// Total is the order subtotal; absent means no free shipping.
	Total *decimal.Decimal `json:"total,omitempty" swaggertype:"number" example:"500"`
}

func (r CalculateShippingRequest) toDomain() domain.ShippingRequest {
	items := make([]domain.CartItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.CartItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	subtotal := decimal.Zero
	if r.Total != nil {
		subtotal = *r.Total
	}

	return domain.ShippingRequest{
		Items:            items,
		DestinationState: r.State,
		PostalCode:       r.PostalCode,
		OrderSubtotal:    subtotal,
	}
}

// ShippingOptionResponse is a priced tier. Service is the stable identifier
// (economic, standard, express); ServiceName is its Portuguese display name
// (Econômico, Padrão, Expresso).
type ShippingOptionResponse struct {
	Service           string  `json:"service" example:"standard" enums:"economic,standard,express"`
	ServiceName       string  `json:"serviceName" example:"Padrão" enums:"Econômico,Padrão,Expresso"`
	Price             float64 `json:"price" example:"23.6"`
	EstimatedDelivery string  `json:"estimatedDelivery" example:"2 a 5 dias úteis"`
	MinDays           int     `json:"minDays" example:"2"`
	MaxDays           int     `json:"maxDays" example:"5"`
}

// CalculateShippingResponse is the body returned by POST /api/shipping/calculate.
type CalculateShippingResponse struct {
	Options       []ShippingOptionResponse `json:"options"`
	Region        string                   `json:"region" example:"southeast"`
	TotalWeightKg float64                  `json:"totalWeightKg" example:"3"`
}

func newCalculateShippingResponse(result *domain.QuoteResult) CalculateShippingResponse {
	options := make([]ShippingOptionResponse, len(result.Options))
	for i, o := range result.Options {
		options[i] = ShippingOptionResponse{
			Service:           string(o.Service),
			ServiceName:       o.ServiceName,
			Price:             o.Price.Round(2).InexactFloat64(),
			EstimatedDelivery: o.EstimatedDelivery,
			MinDays:           o.MinDays,
			MaxDays:           o.MaxDays,
		}
	}
	return CalculateShippingResponse{
		Options:       options,
		Region:        string(result.Region),
		TotalWeightKg: result.TotalWeightKg.InexactFloat64(),
	}
}

// RegionResponse is the body returned by GET /api/shipping/regions/{state}.
type RegionResponse struct {
	State  string `json:"state" example:"SP"`
	Region string `json:"region" example:"southeast"`
}

// SetWeightRequest is the body of PUT /api/shipping/weights/{productId}.
type SetWeightRequest struct {
	WeightKg float64 `json:"weightKg" example:"1.2"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Error is the customer-facing message.
	Error string `json:"error"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id,omitempty"`
}
