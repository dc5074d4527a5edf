package saavn

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizePrefers320kbps(t *testing.T) {
	resp := &searchResponse{}
	resp.Data.Results = []songEntry{{
		Name: "Tum Hi Ho",
		Artists: songArtists{Primary: []artistCredit{
			{Name: "Arijit Singh"},
		}},
		DownloadURL: []downloadCandidate{
			{Quality: "96kbps", URL: "http://cdn/96"},
			{Quality: "320kbps", URL: "http://cdn/320"},
			{Quality: "160kbps", URL: "http://cdn/160"},
		},
	}}

	tracks := normalize(resp)
	if len(tracks) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(tracks))
	}
	if tracks[0].URL != "http://cdn/320" {
		t.Errorf("Expected 320kbps URL regardless of position, got %s", tracks[0].URL)
	}
}

func TestNormalizeFallsBackToLastCandidate(t *testing.T) {
	resp := &searchResponse{}
	resp.Data.Results = []songEntry{{
		Name: "Some Song",
		DownloadURL: []downloadCandidate{
			{Quality: "48kbps", URL: "http://cdn/48"},
			{Quality: "96kbps", URL: "http://cdn/96"},
			{Quality: "160kbps", URL: "http://cdn/160"},
		},
	}}

	tracks := normalize(resp)
	if len(tracks) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(tracks))
	}
	if tracks[0].URL != "http://cdn/160" {
		t.Errorf("Expected last (highest) candidate URL, got %s", tracks[0].URL)
	}
}

func TestNormalizeDropsEntriesWithoutCandidates(t *testing.T) {
	resp := &searchResponse{}
	resp.Data.Results = []songEntry{
		{Name: "No Audio"},
		{
			Name:        "Has Audio",
			DownloadURL: []downloadCandidate{{Quality: "160kbps", URL: "http://cdn/160"}},
		},
	}

	tracks := normalize(resp)
	if len(tracks) != 1 {
		t.Fatalf("Expected entry without candidates to be dropped, got %d tracks", len(tracks))
	}
	if tracks[0].Title != "Has Audio" {
		t.Errorf("Wrong track survived: %s", tracks[0].Title)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	resp := &searchResponse{}
	resp.Data.Results = []songEntry{{
		DownloadURL: []downloadCandidate{{Quality: "160kbps", URL: "http://cdn/160"}},
	}}

	tracks := normalize(resp)
	if len(tracks) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(tracks))
	}
	if tracks[0].Title != "Unknown" {
		t.Errorf("Expected title 'Unknown', got %s", tracks[0].Title)
	}
	if tracks[0].Artist != "Unknown" {
		t.Errorf("Expected artist 'Unknown', got %s", tracks[0].Artist)
	}
}

func TestNormalizeJoinsPrimaryArtists(t *testing.T) {
	resp := &searchResponse{}
	resp.Data.Results = []songEntry{{
		Name: "Duet",
		Artists: songArtists{Primary: []artistCredit{
			{Name: "Arijit Singh"},
			{Name: "Shreya Ghoshal"},
		}},
		DownloadURL: []downloadCandidate{{Quality: "320kbps", URL: "http://cdn/320"}},
	}}

	tracks := normalize(resp)
	if tracks[0].Artist != "Arijit Singh, Shreya Ghoshal" {
		t.Errorf("Expected comma-joined artists in provider order, got %s", tracks[0].Artist)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	resp := &searchResponse{}
	for _, name := range []string{"first", "second", "third"} {
		resp.Data.Results = append(resp.Data.Results, songEntry{
			Name:        name,
			DownloadURL: []downloadCandidate{{Quality: "320kbps", URL: "http://cdn/" + name}},
		})
	}

	tracks := normalize(resp)
	if len(tracks) != 3 {
		t.Fatalf("Expected 3 tracks, got %d", len(tracks))
	}
	for i, want := range []string{"first", "second", "third"} {
		if tracks[i].Title != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, tracks[i].Title)
		}
	}
}

func TestSearchDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "tum hi ho" {
			t.Errorf("Expected query param 'tum hi ho', got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("Expected limit param '10', got %q", got)
		}
		w.Write([]byte(`{"success":true,"data":{"results":[
			{"name":"Tum Hi Ho","artists":{"primary":[{"name":"Arijit Singh"}]},
			 "downloadUrl":[{"quality":"320kbps","url":"http://cdn/320"}]}
		]}}`))
	}))
	defer server.Close()

	service := NewService(server.URL, 10, testLogger())
	tracks, err := service.Search(context.Background(), "tum hi ho")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Title != "Tum Hi Ho" {
		t.Errorf("Unexpected tracks: %+v", tracks)
	}
}

func TestSearchMalformedBodyIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	service := NewService(server.URL, 10, testLogger())
	_, err := service.Search(context.Background(), "anything")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError for malformed body, got %v", err)
	}
}

func TestSearchBadStatusIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewService(server.URL, 10, testLogger())
	_, err := service.Search(context.Background(), "anything")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError for bad status, got %v", err)
	}
}
