package jikan

import "time"

// ImageSet holds the image variants Jikan returns for one format
type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url,omitempty"`
	LargeImageURL string `json:"large_image_url,omitempty"`
}

// Images groups image variants by format
type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// Cover returns the largest available JPG image URL
func (i Images) Cover() string {
	if i.JPG.LargeImageURL != "" {
		return i.JPG.LargeImageURL
	}
	return i.JPG.ImageURL
}

// Resource is the {mal_id, type, name, url} shape used for genres, authors and
// serializations.
type Resource struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// Published describes the publication date range of a manga
type Published struct {
	From   string `json:"from"`
	To     string `json:"to"`
	String string `json:"string"`
}

// FromTime parses the start date. The zero time is returned when absent or invalid.
func (p Published) FromTime() time.Time {
	return parseDate(p.From)
}

// ToTime parses the end date. The zero time is returned when absent or invalid.
func (p Published) ToTime() time.Time {
	return parseDate(p.To)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Manga is the primary record returned by /manga/{id}/full
type Manga struct {
	MalID          int        `json:"mal_id"`
	URL            string     `json:"url"`
	Images         Images     `json:"images"`
	Title          string     `json:"title"`
	TitleEnglish   string     `json:"title_english"`
	TitleJapanese  string     `json:"title_japanese"`
	Type           string     `json:"type"`
	Chapters       *int       `json:"chapters"`
	Volumes        *int       `json:"volumes"`
	Status         string     `json:"status"`
	Publishing     bool       `json:"publishing"`
	Published      Published  `json:"published"`
	Score          *float64   `json:"score"`
	ScoredBy       int        `json:"scored_by"`
	Rank           int        `json:"rank"`
	Popularity     int        `json:"popularity"`
	Members        int        `json:"members"`
	Favorites      int        `json:"favorites"`
	Synopsis       string     `json:"synopsis"`
	Background     string     `json:"background"`
	Authors        []Resource `json:"authors"`
	Serializations []Resource `json:"serializations"`
	Genres         []Resource `json:"genres"`
	Themes         []Resource `json:"themes"`
	Demographics   []Resource `json:"demographics"`
}

// HasEnglishTitle reports whether an English title exists and differs from the main title
func (m *Manga) HasEnglishTitle() bool {
	return m.TitleEnglish != "" && m.TitleEnglish != m.Title
}

// Character is the character reference inside a CharacterEntry
type Character struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url"`
	Images Images `json:"images"`
	Name   string `json:"name"`
}

// CharacterEntry is one element of /manga/{id}/characters
type CharacterEntry struct {
	Character Character `json:"character"`
	Role      string    `json:"role"`
}

// RecommendedManga is the entry inside a RecommendationEntry
type RecommendedManga struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url"`
	Images Images `json:"images"`
	Title  string `json:"title"`
}

// RecommendationEntry is one element of /manga/{id}/recommendations
type RecommendationEntry struct {
	Entry RecommendedManga `json:"entry"`
	URL   string           `json:"url"`
	Votes int              `json:"votes"`
}

// MangaResponse is the envelope of /manga/{id}/full. Data is nil when the
// upstream answered 2xx without the record.
type MangaResponse struct {
	Data *Manga `json:"data"`
}

// CharactersResponse is the envelope of /manga/{id}/characters
type CharactersResponse struct {
	Data []CharacterEntry `json:"data"`
}

// RecommendationsResponse is the envelope of /manga/{id}/recommendations
type RecommendationsResponse struct {
	Data []RecommendationEntry `json:"data"`
}
