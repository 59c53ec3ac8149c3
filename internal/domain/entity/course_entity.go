package entity

// Course is a single catalog entry.
// IDs are assigned once at creation time and never reused, so clients
// may cache them indefinitely.
type Course struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Popularity  int      `json:"popularity"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}
