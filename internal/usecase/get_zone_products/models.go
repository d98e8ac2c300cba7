package get_zone_products

import "github.com/m04kA/container-storefront/internal/domain"

// Request модель запроса листинга товаров зоны
type Request struct {
	ZoneTag   string // Имя тега зоны из URL (например, "zone1")
	WasteType string // Slug типа отходов (handle или название категории), опционально
	Limit     int
	Offset    int
}

// Item товар листинга с минимальной ценой
type Item struct {
	Product       domain.Product
	CheapestPrice *domain.VariantPrice // nil, если ни у одного варианта нет цены
}

// Response модель ответа листинга
type Response struct {
	ZoneTag    string
	ZoneName   string  // Название зоны для заголовка страницы
	Zone       *int    // Номер зоны, если тег есть в таблице зон
	TagID      *string // nil - листинг без фильтра по зоне
	CategoryID *string // nil - листинг без фильтра по типу отходов
	Items      []Item
	Count      int
	Limit      int
	Offset     int
	NoService  bool // Фильтр по зоне запрошен, но товаров нет
}
