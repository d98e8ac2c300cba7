package get_zone_products

import (
	"github.com/m04kA/container-storefront/internal/domain"
	getZoneProducts "github.com/m04kA/container-storefront/internal/usecase/get_zone_products"
)

// PriceResponse цена варианта
type PriceResponse struct {
	VariantID        string  `json:"variantId"`
	CalculatedAmount float64 `json:"calculatedAmount"`
	OriginalAmount   float64 `json:"originalAmount"`
	CurrencyCode     string  `json:"currencyCode"`
	PriceType        *string `json:"priceType,omitempty"`
	PercentageDiff   int     `json:"percentageDiff"`
}

// ProductResponse товар листинга
type ProductResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Handle        string         `json:"handle"`
	Thumbnail     string         `json:"thumbnail,omitempty"`
	VariantIDs    []string       `json:"variantIds"`
	CheapestPrice *PriceResponse `json:"cheapestPrice,omitempty"`
}

// ZoneProductsResponse HTTP response model
type ZoneProductsResponse struct {
	ZoneTag    string            `json:"zoneTag"`
	ZoneName   string            `json:"zoneName"`
	Zone       *int              `json:"zone,omitempty"`
	TagID      *string           `json:"tagId,omitempty"`
	CategoryID *string           `json:"categoryId,omitempty"`
	Products   []ProductResponse `json:"products"`
	Count      int               `json:"count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
	NoService  bool              `json:"noService"`
}

// NewPriceResponse конвертирует цену варианта
func NewPriceResponse(p *domain.VariantPrice) *PriceResponse {
	if p == nil {
		return nil
	}
	return &PriceResponse{
		VariantID:        p.VariantID,
		CalculatedAmount: p.CalculatedAmount,
		OriginalAmount:   p.OriginalAmount,
		CurrencyCode:     p.CurrencyCode,
		PriceType:        p.PriceType,
		PercentageDiff:   p.PercentageDiff,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getZoneProducts.Response) ZoneProductsResponse {
	products := make([]ProductResponse, len(resp.Items))
	for i, item := range resp.Items {
		variantIDs := make([]string, len(item.Product.Variants))
		for j, v := range item.Product.Variants {
			variantIDs[j] = v.ID
		}
		products[i] = ProductResponse{
			ID:            item.Product.ID,
			Title:         item.Product.Title,
			Subtitle:      item.Product.Subtitle,
			Handle:        item.Product.Handle,
			Thumbnail:     item.Product.Thumbnail,
			VariantIDs:    variantIDs,
			CheapestPrice: NewPriceResponse(item.CheapestPrice),
		}
	}

	return ZoneProductsResponse{
		ZoneTag:    resp.ZoneTag,
		ZoneName:   resp.ZoneName,
		Zone:       resp.Zone,
		TagID:      resp.TagID,
		CategoryID: resp.CategoryID,
		Products:   products,
		Count:      resp.Count,
		Limit:      resp.Limit,
		Offset:     resp.Offset,
		NoService:  resp.NoService,
	}
}
