package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table     string
	ID        string
	Name      string
	ParentID  string
	Path      string
	CreatedAt string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:     "catalog.category",
	ID:        "id",
	Name:      "name",
	ParentID:  "parentid",
	Path:      "path",
	CreatedAt: "createdat",
}

func (t CatalogCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.ParentID, t.Path, t.CreatedAt}
}
