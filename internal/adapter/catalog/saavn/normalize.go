package saavn

import (
	"encoding/json"
	"strings"

	"github.com/mokshhhhh/mussick/internal/domain"
)

// unknownArtist is the display name used when no artist credit survives
// normalization.
const unknownArtist = "Unknown Artist"

// artworkFrom picks the last (highest quality) entry of an image array,
// falling back to the placeholder.
func artworkFrom(images []imageRef, placeholder string) string {
	if len(images) == 0 {
		return placeholder
	}
	if href := images[len(images)-1].href(); href != "" {
		return href
	}
	return placeholder
}

// mediaURLFrom picks the last (highest quality) entry of a downloadUrl array
// and forces https, since some upstream entries still carry plain http URLs
// that playback engines refuse.
func mediaURLFrom(urls []imageRef) string {
	if len(urls) == 0 {
		return ""
	}
	return secureURL(urls[len(urls)-1].href())
}

// secureURL rewrites an insecure media URL to its https equivalent.
func secureURL(u string) string {
	return strings.Replace(u, "http://", "https://", 1)
}

// artistDisplayName coerces the upstream artist credit shapes into one
// display string: a plain primaryArtists string wins, then the structured
// artists.primary list joined with ", ", then the singers field.
func artistDisplayName(primaryArtists flexString, credits artistCredits, singers flexString) string {
	if primaryArtists != "" {
		return string(primaryArtists)
	}
	if len(credits.Primary) > 0 {
		names := make([]string, 0, len(credits.Primary))
		for _, credit := range credits.Primary {
			if credit.Name != "" {
				names = append(names, credit.Name)
			}
		}
		if len(names) > 0 {
			return strings.Join(names, ", ")
		}
	}
	if singers != "" {
		return string(singers)
	}
	return unknownArtist
}

// trackFromPayload normalizes one upstream song entry.
// fallbackArtist overrides the unknown-artist default when the caller knows
// the artist from context (e.g. an artist details page).
func trackFromPayload(p songPayload, placeholder, fallbackArtist string) domain.Track {
	artist := string(p.Artist)
	if artist == "" {
		artist = artistDisplayName(p.PrimaryArtists, p.Artists, p.Singers)
	}
	if artist == unknownArtist && fallbackArtist != "" {
		artist = fallbackArtist
	}

	return domain.Track{
		ID:       p.ID,
		Title:    p.Name,
		Artist:   artist,
		Artwork:  artworkFrom(p.Image, placeholder),
		URL:      mediaURLFrom(p.DownloadURL),
		Duration: int(p.Duration),
	}
}

// albumFromPayload normalizes one upstream album entry.
func albumFromPayload(p albumPayload, placeholder, fallbackArtist string) domain.Album {
	artist := string(p.Artist)
	if artist == "" {
		artist = artistDisplayName(p.PrimaryArtists, p.Artists, p.Singers)
	}
	if artist == unknownArtist && fallbackArtist != "" {
		artist = fallbackArtist
	}

	year := string(p.Year)
	if year == "" {
		year = "Unknown"
	}

	return domain.Album{
		ID:        p.ID,
		Title:     p.Name,
		Artist:    artist,
		Year:      year,
		Artwork:   artworkFrom(p.Image, placeholder),
		SongCount: int(p.SongCount),
	}
}

// artistFromPayload normalizes one upstream artist search entry.
// The search endpoint omits album and song counts, so they stay zero.
func artistFromPayload(p artistPayload, placeholder string) domain.Artist {
	return domain.Artist{
		ID:      p.ID,
		Name:    p.Name,
		Artwork: artworkFrom(p.Image, placeholder),
	}
}

// bioParagraph is one entry of a structured artist biography.
type bioParagraph struct {
	Text string `json:"text"`
}

// parseBio extracts biography paragraphs from the upstream bio field, which
// arrives as a JSON array, as an array of {text} objects, or as a string
// containing either of those encoded again.
func parseBio(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	data := []byte(raw)
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		if inner == "" {
			return nil
		}
		data = []byte(inner)
	}

	var paragraphs []bioParagraph
	if err := json.Unmarshal(data, &paragraphs); err == nil {
		texts := make([]string, 0, len(paragraphs))
		for _, p := range paragraphs {
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
		return texts
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err == nil {
		return texts
	}

	return nil
}
