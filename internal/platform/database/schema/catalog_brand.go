package schema

// CatalogBrandTable represents the 'catalog.brand' table
type CatalogBrandTable struct {
	Table     string
	ID        string
	Name      string
	Website   string
	LogoURL   string
	IsNew     string
	CreatedAt string
	UpdatedAt string
}

// CatalogBrand is the schema definition for catalog.brand
var CatalogBrand = CatalogBrandTable{
	Table:     "catalog.brand",
	ID:        "id",
	Name:      "name",
	Website:   "website",
	LogoURL:   "logourl",
	IsNew:     "isnew",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogBrandTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Website, t.LogoURL, t.IsNew, t.CreatedAt, t.UpdatedAt,
	}
}
