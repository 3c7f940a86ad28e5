package schema

// CatalogIngredientTable represents the 'catalog.ingredient' table
type CatalogIngredientTable struct {
	Table          string
	ID             string
	Name           string
	INCIName       string
	Description    string
	Functions      string
	Recommendation string
	IsNew          string
	CreatedAt      string
	UpdatedAt      string
}

// CatalogIngredient is the schema definition for catalog.ingredient
var CatalogIngredient = CatalogIngredientTable{
	Table:          "catalog.ingredient",
	ID:             "id",
	Name:           "name",
	INCIName:       "inciname",
	Description:    "description",
	Functions:      "functions",
	Recommendation: "recommendation",
	IsNew:          "isnew",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

func (t CatalogIngredientTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.INCIName, t.Description, t.Functions,
		t.Recommendation, t.IsNew, t.CreatedAt, t.UpdatedAt,
	}
}
