package models

// Track represents one playable song candidate. URL is resolved once at
// ingestion; a Track with no playable URL never leaves the normalizer.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}
