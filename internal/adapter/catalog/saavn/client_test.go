package saavn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokshhhhh/mussick/internal/logger"
)

const testPlaceholder = "https://placehold.co/test.png"

// Helper to create a client pointed at a test server
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Options{
		BaseURL:            server.URL,
		PlaceholderArtwork: testPlaceholder,
		HTTPClient:         server.Client(),
	}, logger.NewTestLogger())
}

func TestClient_SearchSongs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/songs", r.URL.Path)
		assert.Equal(t, "test query", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{
			"data": {
				"results": [
					{
						"id": "s1",
						"name": "Song One",
						"duration": "240",
						"artists": {"primary": [{"name": "Artist A"}, {"name": "Artist B"}]},
						"image": [
							{"quality": "50x50", "url": "https://img/small.jpg"},
							{"quality": "500x500", "url": "https://img/large.jpg"}
						],
						"downloadUrl": [
							{"quality": "96kbps", "url": "http://cdn/low.mp4"},
							{"quality": "320kbps", "url": "http://cdn/high.mp4"}
						]
					},
					{
						"id": "s2",
						"name": "Song Two",
						"duration": 180,
						"primaryArtists": "Artist C"
					}
				]
			}
		}`))
	}))

	tracks := client.SearchSongs(context.Background(), "test query", 1, 20)
	require.Len(t, tracks, 2)

	assert.Equal(t, "s1", tracks[0].ID)
	assert.Equal(t, "Song One", tracks[0].Title)
	assert.Equal(t, "Artist A, Artist B", tracks[0].Artist)
	assert.Equal(t, 240, tracks[0].Duration)
	assert.Equal(t, "https://img/large.jpg", tracks[0].Artwork)
	assert.Equal(t, "https://cdn/high.mp4", tracks[0].URL)

	assert.Equal(t, "Artist C", tracks[1].Artist)
	assert.Equal(t, 180, tracks[1].Duration)
	assert.Equal(t, testPlaceholder, tracks[1].Artwork)
}

func TestClient_SearchSongs_BareEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"id": "s1", "name": "Song One"}]}`))
	}))

	tracks := client.SearchSongs(context.Background(), "q", 1, 20)
	require.Len(t, tracks, 1)
	assert.Equal(t, "s1", tracks[0].ID)
	assert.Equal(t, "Unknown Artist", tracks[0].Artist)
}

func TestClient_SearchSongs_FailSoft(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		assert.Empty(t, client.SearchSongs(context.Background(), "q", 1, 20))
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		assert.Empty(t, client.SearchSongs(context.Background(), "q", 1, 20))
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewClient(Options{BaseURL: "http://127.0.0.1:1"}, logger.NewTestLogger())
		assert.Empty(t, client.SearchSongs(context.Background(), "q", 1, 20))
	})
}

func TestClient_SearchAlbums(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/albums", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": {
				"results": [
					{"id": "a1", "name": "Album One", "year": 2019, "songCount": "12", "primaryArtists": "Artist A"},
					{"id": "a2", "name": "Album Two"}
				]
			}
		}`))
	}))

	albums := client.SearchAlbums(context.Background(), "q", 1, 20)
	require.Len(t, albums, 2)

	assert.Equal(t, "Album One", albums[0].Title)
	assert.Equal(t, "2019", albums[0].Year)
	assert.Equal(t, 12, albums[0].SongCount)
	assert.Equal(t, "Artist A", albums[0].Artist)

	assert.Equal(t, "Unknown", albums[1].Year)
	assert.Equal(t, "Unknown Artist", albums[1].Artist)
}

func TestClient_SearchArtists(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/artists", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": {
				"results": [
					{"id": "ar1", "name": "Artist A", "image": [{"link": "https://img/a.jpg"}]}
				]
			}
		}`))
	}))

	artists := client.SearchArtists(context.Background(), "q", 1, 20)
	require.Len(t, artists, 1)
	assert.Equal(t, "ar1", artists[0].ID)
	assert.Equal(t, "Artist A", artists[0].Name)
	assert.Equal(t, "https://img/a.jpg", artists[0].Artwork)
}

func TestClient_AlbumSongs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/albums", r.URL.Path)
		assert.Equal(t, "a1", r.URL.Query().Get("id"))

		_, _ = w.Write([]byte(`{
			"data": {
				"songs": [
					{"id": "s1", "name": "Track One", "primaryArtists": "Artist A"},
					{"id": "s2", "name": "Track Two", "primaryArtists": "Artist A"}
				]
			}
		}`))
	}))

	tracks := client.AlbumSongs(context.Background(), "a1")
	require.Len(t, tracks, 2)
	assert.Equal(t, "Track One", tracks[0].Title)
}

func TestClient_AlbumSongs_NoSongs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": "a1", "name": "Empty Album"}}`))
	}))

	// An album without a track listing degrades to an empty slice
	tracks := client.AlbumSongs(context.Background(), "a1")
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
}

func TestClient_ArtistDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists", r.URL.Path)
		assert.Equal(t, "ar1", r.URL.Query().Get("id"))
		assert.Equal(t, "50", r.URL.Query().Get("n_song"))

		_, _ = w.Write([]byte(`{
			"data": {
				"id": "ar1",
				"name": "Artist A",
				"fanCount": "12345",
				"bio": [{"text": "Para 1"}],
				"topSongs": [
					{"id": "s1", "name": "Hit One"},
					{"id": "s2", "name": "Hit Two"},
					{"id": "s3", "name": "Hit Three"},
					{"id": "s4", "name": "Hit Four"},
					{"id": "s5", "name": "Hit Five"}
				],
				"topAlbums": [
					{"id": "a1", "name": "Album One"},
					{"id": "a2", "name": "Album Two"},
					{"id": "a3", "name": "Album Three"},
					{"id": "a4", "name": "Album Four"},
					{"id": "a5", "name": "Album Five"}
				]
			}
		}`))
	}))

	details := client.ArtistDetails(context.Background(), "ar1")
	require.NotNil(t, details)

	assert.Equal(t, "ar1", details.ID)
	assert.Equal(t, "Artist A", details.Name)
	assert.Equal(t, int64(12345), details.FanCount)
	assert.Equal(t, []string{"Para 1"}, details.Bio)
	assert.Len(t, details.TopSongs, 5)
	assert.Len(t, details.Albums, 5)

	// Uncredited listing entries inherit the artist's name
	assert.Equal(t, "Artist A", details.TopSongs[0].Artist)
	assert.Equal(t, "Artist A", details.Albums[0].Artist)
}

func TestClient_ArtistDetails_SparseListingSupplemented(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/artists":
			_, _ = w.Write([]byte(`{
				"data": {
					"id": "ar1",
					"name": "Artist A",
					"topSongs": [{"id": "s1", "name": "Hit One"}],
					"topAlbums": [{"id": "a1", "name": "Album One"}]
				}
			}`))
		case "/api/search/songs":
			assert.Equal(t, "Artist A", r.URL.Query().Get("query"))
			_, _ = w.Write([]byte(`{
				"data": {
					"results": [
						{"id": "s1", "name": "Hit One"},
						{"id": "s2", "name": "Deep Cut"}
					]
				}
			}`))
		case "/api/search/albums":
			_, _ = w.Write([]byte(`{
				"data": {
					"results": [
						{"id": "a2", "name": "Album Two"}
					]
				}
			}`))
		default:
			t.Errorf("unexpected request: %s", r.URL.Path)
		}
	}))

	details := client.ArtistDetails(context.Background(), "ar1")
	require.NotNil(t, details)

	// The supplementary search is merged in, de-duplicated by id
	require.Len(t, details.TopSongs, 2)
	assert.Equal(t, "s1", details.TopSongs[0].ID)
	assert.Equal(t, "s2", details.TopSongs[1].ID)

	require.Len(t, details.Albums, 2)
	assert.Equal(t, "a1", details.Albums[0].ID)
	assert.Equal(t, "a2", details.Albums[1].ID)
}

func TestClient_ArtistDetails_NotFound(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		assert.Nil(t, client.ArtistDetails(context.Background(), "missing"))
	})

	t.Run("empty body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		assert.Nil(t, client.ArtistDetails(context.Background(), "missing"))
	})
}
