package model

// Platform.Logo holds the media path relative to the media root,
// e.g. "platforms/logos/default.png".
type Platform struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}
