package domain

import "strings"

// Category is a food type tag. The known tags below cover the seeded menus;
// any other non-empty tag is accepted so the catalog stays extensible.
type Category string

const (
	CategoryDrink      Category = "Drink"
	CategorySoup       Category = "Soup"
	CategoryMainCourse Category = "Main Course"
	CategorySalad      Category = "Salad"
)

// menu position of each known tag; unknown tags sort after them
var categoryRank = map[Category]int{
	CategorySoup:       0,
	CategorySalad:      1,
	CategoryMainCourse: 2,
	CategoryDrink:      3,
}

func (c Category) Known() bool {
	_, ok := categoryRank[c]
	return ok
}

func (c Category) Rank() int {
	if rank, ok := categoryRank[c]; ok {
		return rank
	}
	return len(categoryRank)
}

// NormalizeCategory maps case variants of a known tag onto the canonical tag
// and trims free text.
func NormalizeCategory(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	for known := range categoryRank {
		if strings.EqualFold(string(known), trimmed) {
			return known
		}
	}
	return Category(trimmed)
}
