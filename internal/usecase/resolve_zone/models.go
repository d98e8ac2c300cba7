package resolve_zone

// Request модель запроса на определение зоны
type Request struct {
	PostalCode string // Почтовый индекс в том виде, как его ввёл покупатель
}

// Response модель ответа с зоной доставки
type Response struct {
	Zone        int     // Номер зоны
	Name        string  // Описание региона
	DisplayName string  // Название для страниц витрины
	TagName     string  // Имя тега зоны в каталоге
	TagID       *string // ID тега (nil, если тег не найден или бэкенд недоступен)
}
