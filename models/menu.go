package models

import "time"

// Menu is a catalog entry. Read-only from the cart's perspective; admin CRUD
// lives behind role checks. Localized text is stored per language, list
// fields as JSON-serialized columns.
type Menu struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Slug          string   `gorm:"uniqueIndex;not null" json:"slug"`
	Category      string   `gorm:"not null" json:"category"`
	Type          string   `gorm:"not null" json:"type"`
	Price         float64  `gorm:"not null" json:"price"`
	DescriptionTH string   `json:"descriptionTh"`
	DescriptionEN string   `json:"descriptionEn"`
	ImageURL      string   `gorm:"not null" json:"imageUrl"`
	Available     bool     `gorm:"default:true" json:"available"`
	ServingSize   string   `json:"servingSize"`
	Nutrition     `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	TagsTH        []string  `gorm:"serializer:json" json:"tagsTh"`
	TagsEN        []string  `gorm:"serializer:json" json:"tagsEn"`
	Dietary       []string  `gorm:"serializer:json" json:"dietary"`
	IngredientsTH []string  `gorm:"serializer:json" json:"ingredientsTh"`
	IngredientsEN []string  `gorm:"serializer:json" json:"ingredientsEn"`
	Allergens     []string  `gorm:"serializer:json" json:"allergens"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Nutrition struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}
