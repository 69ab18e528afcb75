package schema

// ComicTeamTable represents the 'catalog.comicteam' appearance table
type ComicTeamTable struct {
	Table   string
	ComicID string
	TeamID  string
}

// ComicTeam is the schema definition for catalog.comicteam
var ComicTeam = ComicTeamTable{
	Table:   "catalog.comicteam",
	ComicID: "comicid",
	TeamID:  "teamid",
}
