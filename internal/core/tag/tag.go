package tag

import "time"

// Tag represents a named label in the catalogue.
// Identity for API consumers is the slug; the ID is store-assigned.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}
