package schema

// CatalogEventTable represents the 'catalog.event' table
type CatalogEventTable struct {
	Table    string
	ID       string
	Name     string
	NameNorm string
}

// CatalogEvent is the schema definition for catalog.event
var CatalogEvent = CatalogEventTable{
	Table:    "catalog.event",
	ID:       "id",
	Name:     "name",
	NameNorm: "namenorm",
}
