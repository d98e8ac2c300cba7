package domain

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02.01.2006" // формат даты на витрине
)

// Ключи metadata позиции корзины, их читают корзина и заказ на витрине
const (
	MetadataDeliveryDate         = "delivery_date"
	MetadataInstallationLocation = "installation_location"
	MetadataContainerExchange    = "container_exchange"
	MetadataContactName          = "contact_name"
	MetadataContactPhone         = "contact_phone"
)

// Business validation constants
const (
	DefaultQuantity          = 1
	MaxQuantity              = 100
	MaxContactNameLength     = 200
	MaxContactPhoneLength    = 50
	MaxLocationLength        = 200
	DefaultProductsPageLimit = 12
	MaxProductsPageLimit     = 100
	CategoriesFallbackLimit  = 1000
)
