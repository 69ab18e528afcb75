package schema

// CatalogPublisherTable represents the 'catalog.publisher' table
type CatalogPublisherTable struct {
	Table    string
	ID       string
	Name     string
	NameNorm string
}

// CatalogPublisher is the schema definition for catalog.publisher
var CatalogPublisher = CatalogPublisherTable{
	Table:    "catalog.publisher",
	ID:       "id",
	Name:     "name",
	NameNorm: "namenorm",
}
