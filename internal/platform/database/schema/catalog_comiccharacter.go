package schema

// ComicCharacterTable represents the 'catalog.comiccharacter' appearance table.
// ViaTeam marks rows created because the character was present as part of a
// team appearance rather than individually credited.
type ComicCharacterTable struct {
	Table       string
	ComicID     string
	CharacterID string
	ViaTeam     string
}

// ComicCharacter is the schema definition for catalog.comiccharacter
var ComicCharacter = ComicCharacterTable{
	Table:       "catalog.comiccharacter",
	ComicID:     "comicid",
	CharacterID: "characterid",
	ViaTeam:     "viateam",
}
