package model

// Category идентифицирует одну из фиксированных категорий расходов
type Category string

const (
	Restaurants   Category = "restaurants"
	Transport     Category = "transport"
	Supermarkets  Category = "supermarkets"
	Pharmacy      Category = "pharmacy"
	Entertainment Category = "entertainment"
	Other         Category = "other"
)

// Categories перечисляет все категории в порядке отображения
var Categories = []Category{
	Restaurants, Transport,
	Supermarkets, Pharmacy,
	Entertainment, Other,
}

// CategoryKeyboard задает раскладку меню выбора категории, по две в ряд
var CategoryKeyboard = [][]Category{
	{Restaurants, Transport},
	{Supermarkets, Pharmacy},
	{Entertainment, Other},
}

// ParseCategory сопоставляет текст с известной категорией
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
