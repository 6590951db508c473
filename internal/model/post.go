package model

// Post is one feed item. ID may be empty for locally drafted posts,
// in which case dedup falls back to a content fingerprint.
type Post struct {
	ID        string   `json:"id,omitempty"`
	AuthorID  string   `json:"author_id"`
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Images    []string `json:"images,omitempty"`
	Tag       string   `json:"tag,omitempty"`
	Color     string   `json:"color,omitempty"`
	CreatedAt int64    `json:"created_at,omitempty"` // unix milliseconds
}
