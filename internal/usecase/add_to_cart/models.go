package add_to_cart

import (
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
)

// Request модель запроса на добавление контейнера в корзину
type Request struct {
	CartID               string    // ID корзины
	ProductID            string    // ID товара
	VariantID            string    // ID варианта (опционально, по умолчанию первый вариант)
	Quantity             int       // Количество (0 -> 1)
	DeliveryDate         time.Time // Дата доставки, учитывается только календарная дата
	InstallationLocation string    // Место установки контейнера
	ContainerExchange    bool      // Замена ранее поставленного контейнера
	ContactName          string    // Контактное лицо
	ContactPhone         string    // Телефон контактного лица
}

// Response модель ответа с добавленной позицией
type Response struct {
	CartID       string
	ProductID    string
	VariantID    string
	Quantity     int
	DeliveryDate string               // YYYY-MM-DD
	Price        *domain.VariantPrice // nil, если у варианта нет цены
}
