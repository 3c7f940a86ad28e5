package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table            string
	ID               string
	Name             string
	BrandID          string
	Description      string
	ThumbnailURL     string
	Barcode          string
	TechnologistNote string
	IsNew            string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:            "catalog.product",
	ID:               "id",
	Name:             "name",
	BrandID:          "brandid",
	Description:      "description",
	ThumbnailURL:     "thumbnailurl",
	Barcode:          "barcode",
	TechnologistNote: "technologistnote",
	IsNew:            "isnew",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.BrandID, t.Description, t.ThumbnailURL,
		t.Barcode, t.TechnologistNote, t.IsNew, t.CreatedAt, t.UpdatedAt,
	}
}
