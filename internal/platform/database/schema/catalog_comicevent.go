package schema

// ComicEventTable represents the 'catalog.comicevent' appearance table
type ComicEventTable struct {
	Table   string
	ComicID string
	EventID string
}

// ComicEvent is the schema definition for catalog.comicevent
var ComicEvent = ComicEventTable{
	Table:   "catalog.comicevent",
	ComicID: "comicid",
	EventID: "eventid",
}
