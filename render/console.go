package render

import (
	"fmt"
	"strings"

	"github.com/kimd61/manga-prototype1/detail"
)

// ConsoleFormatter provides console output formatting for detail bundles
type ConsoleFormatter struct {
	opts options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(opts ...Option) *ConsoleFormatter {
	return &ConsoleFormatter{opts: newOptions(opts)}
}

// FormatDetail formats a bundle for console display
func (f *ConsoleFormatter) FormatDetail(b *detail.Bundle) string {
	if b == nil {
		return "No manga loaded"
	}

	m := &b.Manga
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s (%s)\n", m.Title, FormatYear(m.Published))

	lines := []string{
		fmt.Sprintf("Format: %s | Status: %s", orDefault(m.Type, unknown), FormatStatus(m.Status)),
		fmt.Sprintf("Published: %s", FormatPublishDates(m.Published)),
		fmt.Sprintf("Chapters: %s | Volumes: %s", FormatCount(m.Chapters), FormatCount(m.Volumes)),
		fmt.Sprintf("Score: %s | Popularity: %s | Members: %s | Favorites: %s",
			FormatScore(m.Score), FormatRank(m.Popularity), FormatNumber(m.Members), FormatNumber(m.Favorites)),
	}
	if m.HasEnglishTitle() {
		lines = append([]string{"English: " + m.TitleEnglish}, lines...)
	}
	if len(m.Authors) > 0 {
		lines = append(lines, "Authors: "+FormatNames(m.Authors))
	}
	if len(m.Serializations) > 0 {
		lines = append(lines, "Serialization: "+FormatNames(m.Serializations))
	}
	if len(m.Genres) > 0 {
		lines = append(lines, "Genres: "+FormatNames(m.Genres))
	}
	writeTree(&sb, lines)

	sb.WriteString("\n")
	if m.Synopsis != "" {
		sb.WriteString(m.Synopsis)
	} else {
		sb.WriteString("No synopsis available.")
	}
	sb.WriteString("\n")

	if chars := f.opts.characters(b); len(chars) > 0 {
		items := make([]string, 0, len(chars))
		for _, c := range chars {
			items = append(items, fmt.Sprintf("%s (%s)", c.Character.Name, c.Role))
		}
		fmt.Fprintf(&sb, "\nCharacters (%d):\n", len(items))
		writeTree(&sb, items)
	}

	if recs := f.opts.recommendations(b); len(recs) > 0 {
		items := make([]string, 0, len(recs))
		for _, r := range recs {
			vote := "votes"
			if r.Votes == 1 {
				vote = "vote"
			}
			items = append(items, fmt.Sprintf("%s (%d %s) %s",
				r.Entry.Title, r.Votes, vote, f.opts.detailLink(r.Entry.MalID)))
		}
		fmt.Fprintf(&sb, "\nRelated manga (%d):\n", len(items))
		writeTree(&sb, items)
	}

	sb.WriteString("\n")
	return sb.String()
}

func writeTree(sb *strings.Builder, items []string) {
	for i, item := range items {
		prefix := "├"
		if i == len(items)-1 {
			prefix = "╰"
		}
		fmt.Fprintf(sb, "%s── %s\n", prefix, item)
	}
}
