package saavn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tunegram/tunegram/models"
)

const preferredQuality = "320kbps"

// APIError reports an unreachable provider or a payload whose shape could
// not be decoded. Missing optional fields inside a valid payload are not
// errors; those entries are skipped individually.
type APIError struct {
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("saavn: %v", e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

type Service struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiURL     string
	limit      int
	logger     *slog.Logger
}

func NewService(apiURL string, limit int, logger *slog.Logger) *Service {
	if limit <= 0 {
		limit = 10
	}
	return &Service{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Be polite to the unofficial API: ~2 requests per second.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		apiURL:  apiURL,
		limit:   limit,
		logger:  logger,
	}
}

// Search queries the song endpoint and returns normalized playable tracks
// in provider relevance order.
func (s *Service) Search(ctx context.Context, query string) ([]models.Track, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(s.limit))

	endpoint := s.apiURL + "?" + params.Encode()

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &APIError{Err: fmt.Errorf("rate limiter error: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &APIError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	tracks := normalize(&result)
	s.logger.Info("saavn search", "query", query, "results", len(tracks))
	return tracks, nil
}

// normalize is a pure transform from the raw response to playable tracks.
// Entries without a resolvable URL are dropped; everything else keeps the
// provider's ordering.
func normalize(resp *searchResponse) []models.Track {
	tracks := make([]models.Track, 0, len(resp.Data.Results))
	for _, entry := range resp.Data.Results {
		playbackURL, ok := resolveDownloadURL(entry.DownloadURL)
		if !ok {
			continue
		}

		tracks = append(tracks, models.Track{
			Title:  titleOrUnknown(entry.Name),
			Artist: artistOrUnknown(entry.Artists.Primary),
			URL:    playbackURL,
		})
	}
	return tracks
}

// resolveDownloadURL picks the 320kbps candidate when present, otherwise
// the last listed candidate (the provider orders ascending by quality).
func resolveDownloadURL(candidates []downloadCandidate) (string, bool) {
	for _, c := range candidates {
		if c.Quality == preferredQuality && c.URL != "" {
			return c.URL, true
		}
	}
	if len(candidates) > 0 && candidates[len(candidates)-1].URL != "" {
		return candidates[len(candidates)-1].URL, true
	}
	return "", false
}

func titleOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

func artistOrUnknown(primary []artistCredit) string {
	if len(primary) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(primary))
	for _, a := range primary {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
