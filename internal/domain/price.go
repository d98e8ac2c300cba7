package domain

import "math"

// VariantPrice цена варианта для отображения на витрине
type VariantPrice struct {
	VariantID        string
	CalculatedAmount float64
	OriginalAmount   float64
	CurrencyCode     string
	PriceType        *string
	PercentageDiff   int // Скидка в процентах относительно исходной цены
}

// PriceOf вычисляет цену варианта
// Приоритет: calculated_amount_with_tax, затем calculated_amount, затем prices[0].
// Скидка всегда считается по суммам без налога.
func PriceOf(v *Variant) (VariantPrice, bool) {
	if v == nil {
		return VariantPrice{}, false
	}

	if cp := v.CalculatedPrice; cp != nil && (positive(cp.CalculatedAmountWithTax) || positive(cp.CalculatedAmount)) {
		price := VariantPrice{
			VariantID:      v.ID,
			CurrencyCode:   cp.CurrencyCode,
			PriceType:      cp.PriceListType,
			PercentageDiff: percentageDiff(value(cp.OriginalAmount), value(cp.CalculatedAmount)),
		}
		if positive(cp.CalculatedAmountWithTax) {
			price.CalculatedAmount = value(cp.CalculatedAmountWithTax)
			price.OriginalAmount = value(cp.OriginalAmountWithTax)
		} else {
			price.CalculatedAmount = value(cp.CalculatedAmount)
			price.OriginalAmount = value(cp.OriginalAmount)
		}
		return price, true
	}

	if len(v.Prices) > 0 {
		p := v.Prices[0]
		return VariantPrice{
			VariantID:        v.ID,
			CalculatedAmount: p.Amount,
			OriginalAmount:   p.Amount,
			CurrencyCode:     p.CurrencyCode,
		}, true
	}

	return VariantPrice{}, false
}

// CheapestPrice возвращает цену самого дешёвого варианта товара
func CheapestPrice(p *Product) (VariantPrice, bool) {
	var (
		best  VariantPrice
		found bool
	)
	for i := range p.Variants {
		price, ok := PriceOf(&p.Variants[i])
		if !ok {
			continue
		}
		if !found || price.CalculatedAmount < best.CalculatedAmount {
			best = price
			found = true
		}
	}
	return best, found
}

// VariantPriceByID ищет вариант по ID или SKU и возвращает его цену
func VariantPriceByID(p *Product, variantID string) (VariantPrice, bool) {
	if variantID == "" {
		return VariantPrice{}, false
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID || p.Variants[i].SKU == variantID {
			return PriceOf(&p.Variants[i])
		}
	}
	return VariantPrice{}, false
}

func percentageDiff(original, calculated float64) int {
	if original == 0 {
		return 0
	}
	return int(math.Round((original - calculated) / original * 100))
}

func positive(v *float64) bool {
	return v != nil && *v != 0
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
