package resolve_zone

import resolveZone "github.com/m04kA/container-storefront/internal/usecase/resolve_zone"

// ResolveZoneResponse HTTP response model
type ResolveZoneResponse struct {
	PostalCode  string  `json:"postalCode"`
	Zone        int     `json:"zone"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	TagName     string  `json:"tagName"`
	TagID       *string `json:"tagId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(postalCode string, resp *resolveZone.Response) ResolveZoneResponse {
	return ResolveZoneResponse{
		PostalCode:  postalCode,
		Zone:        resp.Zone,
		Name:        resp.Name,
		DisplayName: resp.DisplayName,
		TagName:     resp.TagName,
		TagID:       resp.TagID,
	}
}
