package model

// Movie is a catalog entry managed by the admin panel.
//
// Format is "2D" or "3D"; Image holds the absolute URL returned by the
// upload endpoint.
type Movie struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Format      string `json:"format"`
}
