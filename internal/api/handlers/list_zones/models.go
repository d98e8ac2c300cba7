package list_zones

import "github.com/m04kA/container-storefront/internal/domain"

// RangeResponse диапазон почтовых индексов
type RangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ZoneResponse зона доставки
type ZoneResponse struct {
	Zone        int             `json:"zone"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	TagName     string          `json:"tagName"`
	Ranges      []RangeResponse `json:"ranges"`
}

// ListZonesResponse HTTP response model
type ListZonesResponse struct {
	Zones []ZoneResponse `json:"zones"`
}

// FromDomain конвертирует таблицу зон в HTTP ответ
func FromDomain(zones []domain.PostalZone) ListZonesResponse {
	resp := ListZonesResponse{Zones: make([]ZoneResponse, len(zones))}
	for i, z := range zones {
		ranges := make([]RangeResponse, len(z.Ranges))
		for j, r := range z.Ranges {
			ranges[j] = RangeResponse{Min: r.Min, Max: r.Max}
		}
		resp.Zones[i] = ZoneResponse{
			Zone:        z.Zone,
			Name:        z.Name,
			DisplayName: z.DisplayName(),
			TagName:     z.TagName,
			Ranges:      ranges,
		}
	}
	return resp
}
