package domain

import "time"

// Movie is a catalog record. Poster holds an external URL or an s3:// location
// when the poster was uploaded through the API.
type Movie struct {
	ID          string
	Title       string
	Year        int
	Poster      string
	FullPlot    string
	Genres      []string
	LastUpdated time.Time
}

// MovieFilter narrows a catalog listing. Zero values mean "no constraint".
type MovieFilter struct {
	TitlePrefix string
	Year        int
	Genres      []string
}

// MovieUpdate carries a partial update. Nil fields are left untouched; the set
// of updatable fields is fixed to title, year, poster and fullplot.
type MovieUpdate struct {
	Title    *string
	Year     *int
	Poster   *string
	FullPlot *string
}

// Empty reports whether the update would change nothing.
func (u MovieUpdate) Empty() bool {
	return u.Title == nil && u.Year == nil && u.Poster == nil && u.FullPlot == nil
}
