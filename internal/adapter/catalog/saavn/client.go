package saavn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

const (
	defaultBaseURL            = "https://saavn.sumit.co"
	defaultTimeout            = 15 * time.Second
	defaultPlaceholderArtwork = "https://placehold.co/200x200.png"

	// sparseResultThreshold triggers the supplementary name-keyed search when
	// an artist-by-id fetch returns a short listing. The upstream API is known
	// to return sparse data for many artists; the threshold is a quality
	// heuristic, not a hard contract.
	sparseResultThreshold = 5

	// supplementLimit is how many extra entries the fallback search requests.
	supplementLimit = 20
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	// BaseURL is the catalog API host.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// PlaceholderArtwork is used when an entry carries no image.
	PlaceholderArtwork string

	// HTTPClient overrides the default client (mainly for tests).
	HTTPClient *http.Client
}

// Client calls the remote catalog API and normalizes its responses.
//
// All public methods are fail-soft: transport and parse errors are logged and
// surface as empty collections (nil for ArtistDetails), never as errors, so
// list consumers degrade to "no results" instead of crashing.
type Client struct {
	baseURL     string
	placeholder string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a new catalog client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	placeholder := opts.PlaceholderArtwork
	if placeholder == "" {
		placeholder = defaultPlaceholderArtwork
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:     baseURL,
		placeholder: placeholder,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// SearchSongs returns tracks matching the query, paginated.
func (c *Client) SearchSongs(ctx context.Context, query string, page, limit int) []domain.Track {
	payloads := fetchSearch[songPayload](c, ctx, "/api/search/songs", query, page, limit)

	tracks := make([]domain.Track, 0, len(payloads))
	for _, p := range payloads {
		tracks = append(tracks, trackFromPayload(p, c.placeholder, ""))
	}
	return tracks
}

// SearchAlbums returns albums matching the query, paginated.
func (c *Client) SearchAlbums(ctx context.Context, query string, page, limit int) []domain.Album {
	payloads := fetchSearch[albumPayload](c, ctx, "/api/search/albums", query, page, limit)

	albums := make([]domain.Album, 0, len(payloads))
	for _, p := range payloads {
		albums = append(albums, albumFromPayload(p, c.placeholder, ""))
	}
	return albums
}

// SearchArtists returns artists matching the query, paginated.
func (c *Client) SearchArtists(ctx context.Context, query string, page, limit int) []domain.Artist {
	payloads := fetchSearch[artistPayload](c, ctx, "/api/search/artists", query, page, limit)

	artists := make([]domain.Artist, 0, len(payloads))
	for _, p := range payloads {
		artists = append(artists, artistFromPayload(p, c.placeholder))
	}
	return artists
}

// AlbumSongs returns the track listing of one album.
// Albums without songs yield an empty slice, not an error.
func (c *Client) AlbumSongs(ctx context.Context, albumID string) []domain.Track {
	params := url.Values{}
	params.Set("id", albumID)

	body, err := c.get(ctx, "/api/albums", params)
	if err != nil {
		c.logger.Warn("album fetch failed",
			slog.String("album_id", albumID),
			slog.Any("error", err))
		return []domain.Track{}
	}

	var envelope albumEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Warn("album response malformed",
			slog.String("album_id", albumID),
			slog.Any("error", err))
		return []domain.Track{}
	}

	songs := envelope.body().Songs
	tracks := make([]domain.Track, 0, len(songs))
	for _, p := range songs {
		tracks = append(tracks, trackFromPayload(p, c.placeholder, ""))
	}
	return tracks
}

// ArtistDetails returns an artist's merged song and album listings. When the
// direct fetch yields a sparse listing, a supplementary search keyed on the
// artist's display name is merged in, de-duplicated by id.
// Returns nil when the artist cannot be fetched.
func (c *Client) ArtistDetails(ctx context.Context, artistID string) *domain.ArtistDetails {
	params := url.Values{}
	params.Set("id", artistID)
	params.Set("page", "1")
	params.Set("count", "50")
	params.Set("n_song", "50")
	params.Set("n_album", "50")

	raw, err := c.get(ctx, "/artists", params)
	if err != nil {
		c.logger.Warn("artist fetch failed",
			slog.String("artist_id", artistID),
			slog.Any("error", err))
		return nil
	}

	var envelope artistEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Warn("artist response malformed",
			slog.String("artist_id", artistID),
			slog.Any("error", err))
		return nil
	}

	body := envelope.body()
	if body.Name == "" && len(body.songList()) == 0 && len(body.albumList()) == 0 {
		return nil
	}

	songs := make([]domain.Track, 0, len(body.songList()))
	for _, p := range body.songList() {
		songs = append(songs, trackFromPayload(p, c.placeholder, body.Name))
	}
	if len(songs) < sparseResultThreshold && body.Name != "" {
		c.logger.Debug("sparse song listing, supplementing via search",
			slog.String("artist", body.Name),
			slog.Int("count", len(songs)))
		songs = mergeTracks(songs, c.SearchSongs(ctx, body.Name, 1, supplementLimit))
	}

	albums := make([]domain.Album, 0, len(body.albumList()))
	for _, p := range body.albumList() {
		albums = append(albums, albumFromPayload(p, c.placeholder, body.Name))
	}
	if len(albums) < sparseResultThreshold && body.Name != "" {
		c.logger.Debug("sparse album listing, supplementing via search",
			slog.String("artist", body.Name),
			slog.Int("count", len(albums)))
		albums = mergeAlbums(albums, c.SearchAlbums(ctx, body.Name, 1, supplementLimit))
	}

	return &domain.ArtistDetails{
		ID:       body.ID,
		Name:     body.Name,
		Bio:      parseBio(body.Bio),
		FanCount: int64(body.FanCount),
		TopSongs: songs,
		Albums:   albums,
	}
}

// fetchSearch performs one search request and decodes either envelope shape.
// Errors are logged and yield an empty slice.
func fetchSearch[T any](c *Client, ctx context.Context, path, query string, page, limit int) []T {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, path, params)
	if err != nil {
		c.logger.Warn("search failed",
			slog.String("path", path),
			slog.String("query", query),
			slog.Any("error", err))
		return nil
	}

	var envelope searchEnvelope[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Warn("search response malformed",
			slog.String("path", path),
			slog.Any("error", err))
		return nil
	}

	return envelope.results()
}

// get issues one GET request against the catalog API.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}

// mergeTracks appends extras not already present by id.
func mergeTracks(base, extras []domain.Track) []domain.Track {
	seen := make(map[string]struct{}, len(base))
	for _, t := range base {
		seen[t.ID] = struct{}{}
	}
	for _, t := range extras {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		base = append(base, t)
	}
	return base
}

// mergeAlbums appends extras not already present by id.
func mergeAlbums(base, extras []domain.Album) []domain.Album {
	seen := make(map[string]struct{}, len(base))
	for _, a := range base {
		seen[a.ID] = struct{}{}
	}
	for _, a := range extras {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		base = append(base, a)
	}
	return base
}

// Verify that Client implements the Catalog interface
var _ ports.Catalog = (*Client)(nil)
