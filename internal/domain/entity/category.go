// Package entity contains the core business objects of the project.
package entity

import "strings"

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics    Category = "Electronics"
	CategoryClothing       Category = "Clothing"
	CategoryBooks          Category = "Books"
	CategoryHomeGarden     Category = "Home & Garden"
	CategorySportsOutdoors Category = "Sports & Outdoors"
	CategoryBeautyHealth   Category = "Beauty & Health"
	CategoryToysGames      Category = "Toys & Games"
	CategoryAutomotive     Category = "Automotive"
	CategoryFoodBeverages  Category = "Food & Beverages"
	CategoryArtCrafts      Category = "Art & Crafts"
	CategoryJewelry        Category = "Jewelry"
	CategoryFurniture      Category = "Furniture"
	CategoryMusic          Category = "Music"
	CategoryMovies         Category = "Movies"
	CategoryToolsHardware  Category = "Tools & Hardware"
	CategoryPetSupplies    Category = "Pet Supplies"
	CategoryBabyProducts   Category = "Baby Products"
	CategoryOfficeSupplies Category = "Office Supplies"
	CategoryGardenOutdoor  Category = "Garden & Outdoor"
	CategoryOther          Category = "Other"
)

var productCategories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHomeGarden,
	CategorySportsOutdoors,
	CategoryBeautyHealth,
	CategoryToysGames,
	CategoryAutomotive,
	CategoryFoodBeverages,
	CategoryArtCrafts,
	CategoryJewelry,
	CategoryFurniture,
	CategoryMusic,
	CategoryMovies,
	CategoryToolsHardware,
	CategoryPetSupplies,
	CategoryBabyProducts,
	CategoryOfficeSupplies,
	CategoryGardenOutdoor,
	CategoryOther,
}

// ProductCategories returns the valid categories in display order.
func ProductCategories() []Category {
	out := make([]Category, len(productCategories))
	copy(out, productCategories)

	return out
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the predefined values.
func (c Category) IsValid() bool {
	for _, known := range productCategories {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory resolves raw input to a Category. Blank input yields
// CategoryOther; anything else must match a predefined value exactly.
func ParseCategory(raw string) (Category, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryOther, true
	}

	c := Category(trimmed)

	return c, c.IsValid()
}
