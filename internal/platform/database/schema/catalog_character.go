package schema

// CatalogCharacterTable represents the 'catalog.character' table
type CatalogCharacterTable struct {
	Table    string
	ID       string
	Name     string
	NameNorm string
}

// CatalogCharacter is the schema definition for catalog.character
var CatalogCharacter = CatalogCharacterTable{
	Table:    "catalog.character",
	ID:       "id",
	Name:     "name",
	NameNorm: "namenorm",
}
