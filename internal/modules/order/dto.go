package order

type MenuRequest struct {
	Category         string   `json:"category"`
	Vegetarian       bool     `json:"vegetarian"`
	Vegan            bool     `json:"vegan"`
	GlutenFree       bool     `json:"glutenFree"`
	ExcludeAllergens []string `json:"excludeAllergens"`
}

type OrderLine struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type CreateRequest struct {
	RoomNumber          string      `json:"roomNumber" binding:"required"`
	Items               []OrderLine `json:"items" binding:"required,min=1,dive"`
	SpecialInstructions string      `json:"specialInstructions"`
}
