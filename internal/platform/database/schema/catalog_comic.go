package schema

// CatalogComicTable represents the 'catalog.comic' table
type CatalogComicTable struct {
	Table       string
	ID          string
	Title       string
	TitleNorm   string
	SeriesID    string
	PublisherID string
	Year        string
	FilePath    string
}

// CatalogComic is the schema definition for catalog.comic
var CatalogComic = CatalogComicTable{
	Table:       "catalog.comic",
	ID:          "id",
	Title:       "title",
	TitleNorm:   "titlenorm",
	SeriesID:    "seriesid",
	PublisherID: "publisherid",
	Year:        "year",
	FilePath:    "filepath",
}

func (t CatalogComicTable) Columns() []string {
	return []string{t.ID, t.Title, t.TitleNorm, t.SeriesID, t.PublisherID, t.Year, t.FilePath}
}
