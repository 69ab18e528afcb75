package schema

// CatalogTeamTable represents the 'catalog.team' table
type CatalogTeamTable struct {
	Table    string
	ID       string
	Name     string
	NameNorm string
}

// CatalogTeam is the schema definition for catalog.team
var CatalogTeam = CatalogTeamTable{
	Table:    "catalog.team",
	ID:       "id",
	Name:     "name",
	NameNorm: "namenorm",
}
