package schema

// ProductTagTable represents the 'catalog.producttag' table
type ProductTagTable struct {
	Table     string
	ProductID string
	TagID     string
}

// ProductTag is the schema definition for catalog.producttag
var ProductTag = ProductTagTable{
	Table:     "catalog.producttag",
	ProductID: "productid",
	TagID:     "tagid",
}
