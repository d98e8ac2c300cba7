package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// PostalRange непрерывный блок почтовых индексов, границы включительно
type PostalRange struct {
	Min int
	Max int
}

// Contains проверяет, что индекс попадает в диапазон
func (r PostalRange) Contains(code int) bool {
	return code >= r.Min && code <= r.Max
}

// PostalZone зона доставки, объединяющая диапазоны почтовых индексов Германии
type PostalZone struct {
	Zone    int           // Номер зоны (0-9)
	Name    string        // Описание региона, на логику не влияет
	Ranges  []PostalRange // Диапазоны в порядке объявления
	TagName string        // Ключ для поиска тега в каталоге бэкенда
}

// DisplayName возвращает название зоны для страниц витрины
func (z PostalZone) DisplayName() string {
	return fmt.Sprintf("Zone %d Container - KS Containerdienst", z.Zone)
}

// Contains проверяет, что индекс попадает хотя бы в один диапазон зоны
func (z PostalZone) Contains(code int) bool {
	for _, r := range z.Ranges {
		if r.Contains(code) {
			return true
		}
	}
	return false
}

// germanPostalZones таблица зон по https://en.wikipedia.org/wiki/Postal_codes_in_Germany
//
// Порядок объявления является приоритетом: диапазон 70000-79999 есть и у зоны 6, и у зоны 7,
// а 90000-99999 у зон 6 и 9. Побеждает первая зона.
// FIXME: пересечение зон 6/7/9 выглядит ошибкой в исходных данных, ждём решения от продукта.
var germanPostalZones = []PostalZone{
	{
		Zone: 0,
		Name: "Dresden, Chemnitz, Görlitz",
		Ranges: []PostalRange{
			{Min: 1000, Max: 1999},
			{Min: 2000, Max: 2999},
			{Min: 3000, Max: 3999},
			{Min: 4000, Max: 4999},
			{Min: 7000, Max: 7999},
			{Min: 8000, Max: 8999},
			{Min: 9000, Max: 9999},
		},
		TagName: "zone0",
	},
	{
		Zone:    1,
		Name:    "Berlin, Potsdam",
		Ranges:  []PostalRange{{Min: 10000, Max: 19999}},
		TagName: "zone1",
	},
	{
		Zone:    2,
		Name:    "Hamburg, Bremen, Rostock",
		Ranges:  []PostalRange{{Min: 20000, Max: 29999}},
		TagName: "zone2",
	},
	{
		Zone:    3,
		Name:    "Hannover, Braunschweig, Göttingen",
		Ranges:  []PostalRange{{Min: 30000, Max: 39999}},
		TagName: "zone3",
	},
	{
		Zone:    4,
		Name:    "Düsseldorf, Köln, Dortmund",
		Ranges:  []PostalRange{{Min: 40000, Max: 49999}},
		TagName: "zone4",
	},
	{
		Zone: 5,
		Name: "Frankfurt, Kassel, Wiesbaden",
		Ranges: []PostalRange{
			{Min: 50000, Max: 59999},
			{Min: 60000, Max: 69999},
		},
		TagName: "zone5",
	},
	{
		Zone: 6,
		Name: "Nürnberg, Würzburg",
		Ranges: []PostalRange{
			{Min: 70000, Max: 79999},
			{Min: 90000, Max: 99999},
		},
		TagName: "zone6",
	},
	{
		Zone:    7,
		Name:    "Stuttgart, Karlsruhe",
		Ranges:  []PostalRange{{Min: 70000, Max: 79999}},
		TagName: "zone7",
	},
	{
		Zone:    8,
		Name:    "München, Augsburg",
		Ranges:  []PostalRange{{Min: 80000, Max: 89999}},
		TagName: "zone8",
	},
	{
		Zone:    9,
		Name:    "Nürnberg, Regensburg",
		Ranges:  []PostalRange{{Min: 90000, Max: 99999}},
		TagName: "zone9",
	},
}

// GermanPostalZones возвращает копию таблицы зон в порядке объявления
func GermanPostalZones() []PostalZone {
	zones := make([]PostalZone, len(germanPostalZones))
	for i, z := range germanPostalZones {
		zones[i] = z.clone()
	}
	return zones
}

// ResolveZone определяет зону по почтовому индексу
// Пробелы удаляются, остаток парсится как десятичное число. Нечисловой ввод и индекс
// вне всех диапазонов - обычный отрицательный результат, а не ошибка.
// Длина индекса не проверяется.
func ResolveZone(postalCode string) (PostalZone, bool) {
	code, ok := ParsePostalCode(postalCode)
	if !ok {
		return PostalZone{}, false
	}

	for _, zone := range germanPostalZones {
		if zone.Contains(code) {
			return zone.clone(), true
		}
	}

	return PostalZone{}, false
}

// ResolveTagName возвращает имя тега зоны для почтового индекса
func ResolveTagName(postalCode string) (string, bool) {
	zone, ok := ResolveZone(postalCode)
	if !ok {
		return "", false
	}
	return zone.TagName, true
}

// ZoneByTagName ищет зону по имени тега без учёта регистра
func ZoneByTagName(tagName string) (PostalZone, bool) {
	for _, zone := range germanPostalZones {
		if strings.EqualFold(zone.TagName, tagName) {
			return zone.clone(), true
		}
	}
	return PostalZone{}, false
}

// isPostalSpace совпадает с классом \s браузера: BOM пробел, U+0085 нет
func isPostalSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

// ParsePostalCode удаляет все пробельные символы и парсит индекс как целое число
// Как и на фронте, берётся ведущий знак и максимальный префикс из цифр: "12345-A" -> 12345.
// Без цифр в начале строки индекс не распознан.
func ParsePostalCode(postalCode string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if isPostalSpace(r) {
			return -1
		}
		return r
	}, postalCode)

	end := 0
	if end < len(cleaned) && (cleaned[end] == '+' || cleaned[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	code, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return int(code), true
}

func (z PostalZone) clone() PostalZone {
	ranges := make([]PostalRange, len(z.Ranges))
	copy(ranges, z.Ranges)
	z.Ranges = ranges
	return z
}
