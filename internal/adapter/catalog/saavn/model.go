// Package saavn implements the Catalog port over a JioSaavn-style HTTP API.
//
// The upstream API is loosely shaped: envelopes come as {data:{results:[...]}}
// or {results:[...]}, numbers arrive as strings, and artist credits appear in
// three different forms. This package parses the concrete shapes actually
// observed into explicit structs and normalizes from there.
package saavn

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexInt decodes a JSON number or a numeric string into an int.
// Anything else decodes to zero.
type flexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(int(n))
	return nil
}

// flexString decodes a JSON string or number into a string.
// Objects and arrays decode to the empty string, mirroring the upstream
// habit of sometimes replacing a plain field with a structured one.
type flexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case '{', '[':
		*f = ""
	default:
		*f = flexString(string(data))
	}
	return nil
}

// imageRef is one entry of an image or downloadUrl array. The upstream uses
// "link" and "url" interchangeably; entries are ordered low to high quality.
type imageRef struct {
	Link    string `json:"link"`
	URL     string `json:"url"`
	Quality string `json:"quality"`
}

// href returns whichever of the two URL fields is set.
func (r imageRef) href() string {
	if r.Link != "" {
		return r.Link
	}
	return r.URL
}

// artistCredit is one entry of a structured artist list.
type artistCredit struct {
	Name string `json:"name"`
}

// artistCredits groups the structured artist lists of a payload.
type artistCredits struct {
	Primary []artistCredit `json:"primary"`
}

// songPayload is one song entry in any upstream response.
type songPayload struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Duration       flexInt       `json:"duration"`
	Image          []imageRef    `json:"image"`
	DownloadURL    []imageRef    `json:"downloadUrl"`
	Artist         flexString    `json:"artist"`
	PrimaryArtists flexString    `json:"primaryArtists"`
	Artists        artistCredits `json:"artists"`
	Singers        flexString    `json:"singers"`
}

// albumPayload is one album entry in any upstream response.
type albumPayload struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Year           flexString    `json:"year"`
	SongCount      flexInt       `json:"songCount"`
	Image          []imageRef    `json:"image"`
	Artist         flexString    `json:"artist"`
	PrimaryArtists flexString    `json:"primaryArtists"`
	Artists        artistCredits `json:"artists"`
	Singers        flexString    `json:"singers"`
}

// artistPayload is one artist entry in a search response.
type artistPayload struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Image []imageRef `json:"image"`
}

// searchBody is the inner results container of a search response.
type searchBody[T any] struct {
	Results []T `json:"results"`
}

// searchEnvelope covers the two observed search response shapes:
// {data:{results:[...]}} and the fallback {results:[...]}.
type searchEnvelope[T any] struct {
	Data    *searchBody[T] `json:"data"`
	Results []T            `json:"results"`
}

// results picks whichever shape the response used.
func (e *searchEnvelope[T]) results() []T {
	if e.Data != nil {
		return e.Data.Results
	}
	return e.Results
}

// albumBody is the album-by-id payload, with or without the data wrapper.
type albumBody struct {
	Songs []songPayload `json:"songs"`
}

// albumEnvelope covers {data:{songs:[...]}} and the bare {songs:[...]} shape.
type albumEnvelope struct {
	Data *albumBody `json:"data"`
	albumBody
}

// body picks whichever shape the response used.
func (e *albumEnvelope) body() albumBody {
	if e.Data != nil {
		return *e.Data
	}
	return e.albumBody
}

// artistBody is the artist-by-id payload, with or without the data wrapper.
type artistBody struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Bio       json.RawMessage `json:"bio"`
	FanCount  flexInt         `json:"fanCount"`
	TopSongs  []songPayload   `json:"topSongs"`
	Songs     []songPayload   `json:"songs"`
	TopAlbums []albumPayload  `json:"topAlbums"`
	Albums    []albumPayload  `json:"albums"`
}

// songList returns the song listing, preferring the topSongs field.
func (b *artistBody) songList() []songPayload {
	if len(b.TopSongs) > 0 {
		return b.TopSongs
	}
	return b.Songs
}

// albumList returns the album listing, preferring the topAlbums field.
func (b *artistBody) albumList() []albumPayload {
	if len(b.TopAlbums) > 0 {
		return b.TopAlbums
	}
	return b.Albums
}

// artistEnvelope covers {data:{...}} and the bare artist payload shape.
type artistEnvelope struct {
	Data *artistBody `json:"data"`
	artistBody
}

// body picks whichever shape the response used.
func (e *artistEnvelope) body() artistBody {
	if e.Data != nil {
		return *e.Data
	}
	return e.artistBody
}
