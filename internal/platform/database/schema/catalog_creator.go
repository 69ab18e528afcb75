package schema

// CatalogCreatorTable represents the 'catalog.creator' table
type CatalogCreatorTable struct {
	Table    string
	ID       string
	Name     string
	NameNorm string
}

// CatalogCreator is the schema definition for catalog.creator
var CatalogCreator = CatalogCreatorTable{
	Table:    "catalog.creator",
	ID:       "id",
	Name:     "name",
	NameNorm: "namenorm",
}
