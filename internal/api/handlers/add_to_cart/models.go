package add_to_cart

import (
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
	addToCart "github.com/m04kA/container-storefront/internal/usecase/add_to_cart"
)

// AddToCartRequest HTTP request model
type AddToCartRequest struct {
	ProductID            string `json:"productId"`
	VariantID            string `json:"variantId,omitempty"`
	Quantity             int    `json:"quantity,omitempty"`
	DeliveryDate         string `json:"deliveryDate"` // "2025-10-15"
	InstallationLocation string `json:"installationLocation"`
	ContainerExchange    bool   `json:"containerExchange"`
	ContactName          string `json:"contactName"`
	ContactPhone         string `json:"contactPhone"`
}

// PriceResponse цена выбранного варианта
type PriceResponse struct {
	CalculatedAmount float64 `json:"calculatedAmount"`
	OriginalAmount   float64 `json:"originalAmount"`
	CurrencyCode     string  `json:"currencyCode"`
	PercentageDiff   int     `json:"percentageDiff"`
}

// AddToCartResponse HTTP response model
type AddToCartResponse struct {
	CartID       string         `json:"cartId"`
	ProductID    string         `json:"productId"`
	VariantID    string         `json:"variantId"`
	Quantity     int            `json:"quantity"`
	DeliveryDate string         `json:"deliveryDate"`
	Price        *PriceResponse `json:"price,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая дата допустима: её отклонит валидация use case.
func (r *AddToCartRequest) ToUseCaseRequest(cartID string) (*addToCart.Request, error) {
	var deliveryDate time.Time
	if r.DeliveryDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.DeliveryDate)
		if err != nil {
			return nil, err
		}
		deliveryDate = parsed
	}

	return &addToCart.Request{
		CartID:               cartID,
		ProductID:            r.ProductID,
		VariantID:            r.VariantID,
		Quantity:             r.Quantity,
		DeliveryDate:         deliveryDate,
		InstallationLocation: r.InstallationLocation,
		ContainerExchange:    r.ContainerExchange,
		ContactName:          r.ContactName,
		ContactPhone:         r.ContactPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *addToCart.Response) AddToCartResponse {
	out := AddToCartResponse{
		CartID:       resp.CartID,
		ProductID:    resp.ProductID,
		VariantID:    resp.VariantID,
		Quantity:     resp.Quantity,
		DeliveryDate: resp.DeliveryDate,
	}
	if resp.Price != nil {
		out.Price = &PriceResponse{
			CalculatedAmount: resp.Price.CalculatedAmount,
			OriginalAmount:   resp.Price.OriginalAmount,
			CurrencyCode:     resp.Price.CurrencyCode,
			PercentageDiff:   resp.Price.PercentageDiff,
		}
	}
	return out
}
