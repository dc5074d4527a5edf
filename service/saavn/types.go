package saavn

// API types for the JioSaavn song search endpoint.

type searchResponse struct {
	Success bool       `json:"success"`
	Data    searchData `json:"data"`
}

type searchData struct {
	Results []songEntry `json:"results"`
}

type songEntry struct {
	Name        string              `json:"name"`
	Artists     songArtists         `json:"artists"`
	DownloadURL []downloadCandidate `json:"downloadUrl"`
}

type songArtists struct {
	Primary []artistCredit `json:"primary"`
}

type artistCredit struct {
	Name string `json:"name"`
}

// downloadCandidate is one quality tier of a song. The provider lists
// candidates in ascending quality order.
type downloadCandidate struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}
