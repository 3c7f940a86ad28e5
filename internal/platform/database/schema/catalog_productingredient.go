package schema

// ProductIngredientTable represents the 'catalog.productingredient' table
type ProductIngredientTable struct {
	Table        string
	ProductID    string
	IngredientID string
}

// ProductIngredient is the schema definition for catalog.productingredient
var ProductIngredient = ProductIngredientTable{
	Table:        "catalog.productingredient",
	ProductID:    "productid",
	IngredientID: "ingredientid",
}
