package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimd61/manga-prototype1/detail"
	"github.com/kimd61/manga-prototype1/filter"
	"github.com/kimd61/manga-prototype1/jikan"
)

func testManga() jikan.Manga {
	return jikan.Manga{
		MalID:        656,
		Title:        "Vagabond",
		TitleEnglish: "Vagabond (English)",
		Type:         "Manga",
		Status:       "on_hiatus",
		Published:    jikan.Published{From: "1998-09-03T00:00:00+00:00"},
		Chapters:     intPtr(327),
		Score:        floatPtr(9.24),
		Popularity:   19,
		Members:      1234567,
		Favorites:    45012,
		Synopsis:     "Miyamoto Musashi wanders Japan.",
		Background:   "Winner of the Kodansha Manga Award.",
		Images: jikan.Images{JPG: jikan.ImageSet{
			ImageURL:      "https://cdn.example/656.jpg",
			LargeImageURL: "https://cdn.example/656l.jpg",
		}},
		Authors:        []jikan.Resource{{Name: "Inoue, Takehiko"}},
		Serializations: []jikan.Resource{{Name: "Morning"}},
		Genres:         []jikan.Resource{{Name: "Action"}, {Name: "Adventure"}},
	}
}

func testBundle(chars, recs int) *detail.Bundle {
	b := &detail.Bundle{
		LoadID:          "test",
		Manga:           testManga(),
		Characters:      []jikan.CharacterEntry{},
		Recommendations: []jikan.RecommendationEntry{},
	}
	for i := 1; i <= chars; i++ {
		role := "Supporting"
		if i == 1 {
			role = "Main"
		}
		b.Characters = append(b.Characters, jikan.CharacterEntry{
			Character: jikan.Character{MalID: i, Name: fmt.Sprintf("Character %d", i)},
			Role:      role,
		})
	}
	for i := 1; i <= recs; i++ {
		b.Recommendations = append(b.Recommendations, jikan.RecommendationEntry{
			Entry: jikan.RecommendedManga{
				MalID:  1000 + i,
				Title:  fmt.Sprintf("Related %d", i),
				Images: jikan.Images{JPG: jikan.ImageSet{ImageURL: fmt.Sprintf("https://cdn.example/%d.jpg", i)}},
			},
			Votes: i,
		})
	}
	return b
}

func renderDoc(t *testing.T, r *HTMLRenderer, b *detail.Bundle) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, b))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func field(doc *goquery.Document, name string) string {
	return strings.TrimSpace(doc.Find(fmt.Sprintf(`[data-field=%q]`, name)).First().Text())
}

func TestHTMLRenderer_Render(t *testing.T) {
	doc := renderDoc(t, NewHTMLRenderer(), testBundle(3, 2))

	assert.Equal(t, "Vagabond", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Contains(t, doc.Find(".manga-alt-titles").Text(), "English: Vagabond (English)")

	src, _ := doc.Find(".manga-cover-large img").Attr("src")
	assert.Equal(t, "https://cdn.example/656l.jpg", src)

	assert.Equal(t, "Manga", field(doc, "format"))
	assert.Equal(t, "On Hiatus", field(doc, "status"))
	assert.Equal(t, "Sep 3, 1998 to Present", field(doc, "published"))
	assert.Equal(t, "327", field(doc, "chapters"))
	assert.Equal(t, "Unknown", field(doc, "volumes"))
	assert.Equal(t, "Inoue, Takehiko", field(doc, "authors"))
	assert.Equal(t, "Morning", field(doc, "serialization"))
	assert.Equal(t, "1998", field(doc, "year"))
	assert.Equal(t, "#19", field(doc, "popularity"))
	assert.Equal(t, "1,234,567", field(doc, "members"))
	assert.Equal(t, "45,012", field(doc, "favorites"))

	assert.Equal(t, "9.2", strings.TrimSpace(doc.Find(".score-value").Text()))
	assert.Equal(t, 2, doc.Find(".genre-tag").Length())
	assert.Contains(t, doc.Find(".manga-synopsis p").Text(), "Miyamoto Musashi")
	assert.Contains(t, doc.Find(".manga-background p").Text(), "Kodansha")

	assert.Equal(t, 3, doc.Find(".character-card").Length())
	assert.Equal(t, "Main", strings.TrimSpace(doc.Find(".character-role").First().Text()))

	cards := doc.Find("#related-manga-section .manga-card")
	require.Equal(t, 2, cards.Length())
	href, _ := cards.First().Attr("href")
	assert.Equal(t, "manga-detail.html?id=1001", href)
}

func TestHTMLRenderer_Limits(t *testing.T) {
	b := testBundle(10, 9)
	doc := renderDoc(t, NewHTMLRenderer(), b)

	assert.Equal(t, DefaultMaxCharacters, doc.Find(".character-card").Length())
	assert.Equal(t, DefaultMaxRecommendations, doc.Find(".manga-card").Length())

	// the bundle keeps its full lists
	assert.Len(t, b.Characters, 10)
	assert.Len(t, b.Recommendations, 9)

	doc = renderDoc(t, NewHTMLRenderer(WithMaxCharacters(2), WithMaxRecommendations(0)), b)
	assert.Equal(t, 2, doc.Find(".character-card").Length())
	assert.Equal(t, 0, doc.Find("#related-manga-section").Length())
}

func TestHTMLRenderer_PartialBundle(t *testing.T) {
	b := testBundle(0, 0)
	b.Manga.TitleEnglish = ""
	b.Manga.Synopsis = ""
	b.Manga.Background = ""
	b.Manga.Score = nil
	b.Manga.Type = ""
	b.Manga.Images.JPG.LargeImageURL = ""

	doc := renderDoc(t, NewHTMLRenderer(), b)

	assert.Equal(t, 0, doc.Find(".manga-alt-titles").Length())
	assert.Equal(t, 0, doc.Find(".manga-characters").Length())
	assert.Equal(t, 0, doc.Find("#related-manga-section").Length())
	assert.Equal(t, 0, doc.Find(".manga-background").Length())
	assert.Equal(t, "No synopsis available.", strings.TrimSpace(doc.Find(".manga-synopsis p").Text()))
	assert.Equal(t, "N/A", strings.TrimSpace(doc.Find(".score-value").Text()))
	assert.Equal(t, "Unknown", field(doc, "format"))
	assert.Equal(t, "Manga", field(doc, "type"))

	src, _ := doc.Find(".manga-cover-large img").Attr("src")
	assert.Equal(t, "https://cdn.example/656.jpg", src)
}

func TestHTMLRenderer_SameEnglishTitleHidden(t *testing.T) {
	b := testBundle(0, 0)
	b.Manga.TitleEnglish = b.Manga.Title

	doc := renderDoc(t, NewHTMLRenderer(), b)
	assert.Equal(t, 0, doc.Find(".manga-alt-titles").Length())
}

func TestHTMLRenderer_Filters(t *testing.T) {
	compiler := filter.NewExprCompiler()
	recFilter, err := compiler.Compile(`Votes >= 5`)
	require.NoError(t, err)
	charFilter, err := compiler.Compile(`Role == "Main"`)
	require.NoError(t, err)

	b := testBundle(10, 12)
	r := NewHTMLRenderer(
		WithRecommendationFilter(recFilter),
		WithCharacterFilter(charFilter),
		WithDetailLinkBase("/manga-detail"),
	)
	doc := renderDoc(t, r, b)

	assert.Equal(t, 1, doc.Find(".character-card").Length())

	cards := doc.Find(".manga-card")
	require.Equal(t, 6, cards.Length())
	href, _ := cards.First().Attr("href")
	assert.Equal(t, "/manga-detail?id=1005", href)
	assert.Len(t, b.Recommendations, 12)
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	b := testBundle(0, 0)
	b.Manga.Title = `<script>alert("x")</script>`

	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(&buf, b))
	assert.NotContains(t, buf.String(), "<script>")

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, b.Manga.Title, strings.TrimSpace(doc.Find("h1").Text()))
}

func TestHTMLRenderer_NilBundle(t *testing.T) {
	var buf bytes.Buffer
	err := NewHTMLRenderer().Render(&buf, nil)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestHTMLRenderer_RenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().RenderError(&buf, detail.MessageMissingInput))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, detail.MessageMissingInput, strings.TrimSpace(doc.Find("#error-message").Text()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHTMLRenderer_WriteError(t *testing.T) {
	err := NewHTMLRenderer().Render(failingWriter{}, testBundle(0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}

func TestConsoleFormatter_FormatDetail(t *testing.T) {
	b := testBundle(10, 1)
	out := NewConsoleFormatter().FormatDetail(b)

	assert.Contains(t, out, "Vagabond (1998)")
	assert.Contains(t, out, "English: Vagabond (English)")
	assert.Contains(t, out, "Format: Manga | Status: On Hiatus")
	assert.Contains(t, out, "Chapters: 327 | Volumes: Unknown")
	assert.Contains(t, out, "Score: 9.2 | Popularity: #19 | Members: 1,234,567 | Favorites: 45,012")
	assert.Contains(t, out, "Genres: Action, Adventure")
	assert.Contains(t, out, "Characters (8):")
	assert.Contains(t, out, "├── Character 1 (Main)")
	assert.Contains(t, out, "╰── Character 8 (Supporting)")
	assert.NotContains(t, out, "Character 9")
	assert.Contains(t, out, "Related manga (1):")
	assert.Contains(t, out, "╰── Related 1 (1 vote) manga-detail.html?id=1001")
}

func TestConsoleFormatter_EmptySections(t *testing.T) {
	b := testBundle(0, 0)
	b.Manga.Synopsis = ""
	out := NewConsoleFormatter().FormatDetail(b)

	assert.Contains(t, out, "No synopsis available.")
	assert.NotContains(t, out, "Characters (")
	assert.NotContains(t, out, "Related manga (")

	assert.Equal(t, "No manga loaded", NewConsoleFormatter().FormatDetail(nil))
}
