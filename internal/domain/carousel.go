package domain

import "time"

// CarouselImage backs one slide of the home-page carousel. Exactly one of
// URL (external link) and FilePath (uploaded file) is set at any time;
// setting one clears the other. The service layer resolves FilePath into
// URL before the row leaves the API.
type CarouselImage struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	URL       *string   `db:"url" json:"url"`
	Alt       string    `db:"alt" json:"alt"`
	Order     int       `db:"display_order" json:"order"`
	FilePath  *string   `db:"file_path" json:"-"`
	FileName  *string   `db:"file_name" json:"-"`
	FileSize  *int64    `db:"file_size" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
