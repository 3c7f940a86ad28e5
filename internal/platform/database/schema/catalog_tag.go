package schema

// CatalogTagTable represents the 'catalog.tag' table
type CatalogTagTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// CatalogTag is the schema definition for catalog.tag
var CatalogTag = CatalogTagTable{
	Table:     "catalog.tag",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t CatalogTagTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt}
}
