package domain

import "time"

// ProductTag тег каталога бэкенда, по нему фильтруются товары зоны доставки
type ProductTag struct {
	ID        string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category категория каталога (тип отходов)
type Category struct {
	ID     string
	Name   string
	Handle string
}

// Product товар каталога (контейнер)
type Product struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Handle      string
	Thumbnail   string
	Variants    []Variant
}

// FirstVariantID возвращает ID первого варианта товара
func (p *Product) FirstVariantID() (string, bool) {
	if len(p.Variants) == 0 || p.Variants[0].ID == "" {
		return "", false
	}
	return p.Variants[0].ID, true
}

// Variant вариант товара с ценами
type Variant struct {
	ID              string
	SKU             string
	CalculatedPrice *CalculatedPrice
	Prices          []Price
}

// CalculatedPrice цена варианта, посчитанная бэкендом для региона
type CalculatedPrice struct {
	CalculatedAmount        *float64
	CalculatedAmountWithTax *float64
	OriginalAmount          *float64
	OriginalAmountWithTax   *float64
	CurrencyCode            string
	PriceListType           *string
}

// Price базовая цена варианта
type Price struct {
	Amount       float64
	CurrencyCode string
}

// ProductFilter фильтр листинга товаров
type ProductFilter struct {
	TagID      *string // Тег зоны (опционально, если nil - без фильтра по зоне)
	CategoryID *string // Категория (опционально)
	Limit      int
	Offset     int
}

// ProductPage страница листинга
type ProductPage struct {
	Products []Product
	Count    int
}

// LineItem позиция корзины с данными доставки
type LineItem struct {
	VariantID string
	Quantity  int
	Metadata  map[string]interface{}
}
