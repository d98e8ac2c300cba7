package commerce

import (
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
)

// productTagsResponse ответ GET /store/product-tags
type productTagsResponse struct {
	ProductTags []ProductTag `json:"product_tags"`
}

// ProductTag модель тега из бэкенда
type ProductTag struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// availableDatesResponse ответ GET /store/products/{id}/available-dates
type availableDatesResponse struct {
	BookedDates  []string       `json:"booked_dates"`
	DateBookings map[string]int `json:"date_bookings,omitempty"`
}

// categoriesResponse ответ GET /store/product-categories
type categoriesResponse struct {
	ProductCategories []Category `json:"product_categories"`
}

// Category модель категории из бэкенда
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// productsResponse ответ GET /store/products
type productsResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// productResponse ответ GET /store/products/{id}
type productResponse struct {
	Product Product `json:"product"`
}

// Product модель товара из бэкенда
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle"`
	Description *string   `json:"description"`
	Handle      string    `json:"handle"`
	Thumbnail   *string   `json:"thumbnail"`
	Variants    []Variant `json:"variants"`
}

// Variant модель варианта товара
type Variant struct {
	ID              string           `json:"id"`
	SKU             *string          `json:"sku"`
	CalculatedPrice *CalculatedPrice `json:"calculated_price"`
	Prices          []Price          `json:"prices"`
}

// CalculatedPrice рассчитанная цена варианта
type CalculatedPrice struct {
	CalculatedAmount        *float64   `json:"calculated_amount"`
	CalculatedAmountWithTax *float64   `json:"calculated_amount_with_tax"`
	OriginalAmount          *float64   `json:"original_amount"`
	OriginalAmountWithTax   *float64   `json:"original_amount_with_tax"`
	CurrencyCode            string     `json:"currency_code"`
	CalculatedPriceInfo     *PriceInfo `json:"calculated_price"`
}

// PriceInfo информация о прайс-листе
type PriceInfo struct {
	PriceListType *string `json:"price_list_type"`
}

// Price базовая цена варианта
type Price struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
}

// addLineItemRequest тело POST /store/carts/{id}/line-items
type addLineItemRequest struct {
	VariantID string                 `json:"variant_id"`
	Quantity  int                    `json:"quantity"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// cartResponse ответ на добавление позиции
type cartResponse struct {
	Cart Cart `json:"cart"`
}

// Cart модель корзины (только нужные поля)
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// CartItem позиция корзины
type CartItem struct {
	ID        string                 `json:"id"`
	VariantID string                 `json:"variant_id"`
	Quantity  int                    `json:"quantity"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ToDomain конвертирует тег в доменную модель
func (t ProductTag) ToDomain() domain.ProductTag {
	return domain.ProductTag{
		ID:        t.ID,
		Value:     t.Value,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToDomain конвертирует категорию в доменную модель
func (c Category) ToDomain() domain.Category {
	return domain.Category{
		ID:     c.ID,
		Name:   c.Name,
		Handle: c.Handle,
	}
}

// ToDomain конвертирует товар в доменную модель
func (p Product) ToDomain() domain.Product {
	variants := make([]domain.Variant, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = v.toDomain()
	}

	return domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    deref(p.Subtitle),
		Description: deref(p.Description),
		Handle:      p.Handle,
		Thumbnail:   deref(p.Thumbnail),
		Variants:    variants,
	}
}

func (v Variant) toDomain() domain.Variant {
	prices := make([]domain.Price, len(v.Prices))
	for i, p := range v.Prices {
		prices[i] = domain.Price{Amount: p.Amount, CurrencyCode: p.CurrencyCode}
	}

	var calculated *domain.CalculatedPrice
	if v.CalculatedPrice != nil {
		cp := v.CalculatedPrice
		calculated = &domain.CalculatedPrice{
			CalculatedAmount:        cp.CalculatedAmount,
			CalculatedAmountWithTax: cp.CalculatedAmountWithTax,
			OriginalAmount:          cp.OriginalAmount,
			OriginalAmountWithTax:   cp.OriginalAmountWithTax,
			CurrencyCode:            cp.CurrencyCode,
		}
		if cp.CalculatedPriceInfo != nil {
			calculated.PriceListType = cp.CalculatedPriceInfo.PriceListType
		}
	}

	return domain.Variant{
		ID:              v.ID,
		SKU:             deref(v.SKU),
		CalculatedPrice: calculated,
		Prices:          prices,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
