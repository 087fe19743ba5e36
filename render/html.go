package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/kimd61/manga-prototype1/detail"
	"github.com/kimd61/manga-prototype1/jikan"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"status":    FormatStatus,
	"published": FormatPublishDates,
	"year":      FormatYear,
	"number":    FormatNumber,
	"names":     FormatNames,
	"score":     FormatScore,
	"count":     FormatCount,
	"rank":      FormatRank,
	"orDefault": orDefault,
}).ParseFS(templateFS, "templates/*.tmpl"))

// HTMLRenderer writes the detail page fragment
type HTMLRenderer struct {
	opts options
}

// NewHTMLRenderer creates a new HTML renderer
func NewHTMLRenderer(opts ...Option) *HTMLRenderer {
	return &HTMLRenderer{opts: newOptions(opts)}
}

type recommendationCard struct {
	Title    string
	ImageURL string
	Link     string
	Votes    int
}

type pageData struct {
	Manga           *jikan.Manga
	Cover           string
	Characters      []jikan.CharacterEntry
	Recommendations []recommendationCard
}

// Render writes the fragment for b. Nothing is written if rendering fails.
func (r *HTMLRenderer) Render(w io.Writer, b *detail.Bundle) error {
	if b == nil {
		return fmt.Errorf("render: nil bundle")
	}

	recs := r.opts.recommendations(b)
	cards := make([]recommendationCard, 0, len(recs))
	for _, rec := range recs {
		cards = append(cards, recommendationCard{
			Title:    rec.Entry.Title,
			ImageURL: rec.Entry.Images.JPG.ImageURL,
			Link:     r.opts.detailLink(rec.Entry.MalID),
			Votes:    rec.Votes,
		})
	}

	data := pageData{
		Manga:           &b.Manga,
		Cover:           b.Manga.Images.Cover(),
		Characters:      r.opts.characters(b),
		Recommendations: cards,
	}

	return execute(w, "detail", data)
}

// RenderError writes the error fragment shown in place of the page
func (r *HTMLRenderer) RenderError(w io.Writer, msg string) error {
	return execute(w, "error", msg)
}

func execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s template: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s fragment: %w", name, err)
	}
	return nil
}
