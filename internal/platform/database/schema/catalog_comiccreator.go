package schema

// ComicCreatorTable represents the 'catalog.comiccreator' appearance table.
// A creator may hold several roles on one comic; (comicid, creatorid, role)
// triples are unique.
type ComicCreatorTable struct {
	Table     string
	ComicID   string
	CreatorID string
	Role      string
}

// ComicCreator is the schema definition for catalog.comiccreator
var ComicCreator = ComicCreatorTable{
	Table:     "catalog.comiccreator",
	ComicID:   "comicid",
	CreatorID: "creatorid",
	Role:      "role",
}
