package render

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/kimd61/manga-prototype1/jikan"
)

const unknown = "Unknown"

// FormatStatus turns a status such as "on_hiatus" into "On Hiatus".
// An empty status is reported as Unknown.
func FormatStatus(status string) string {
	if status == "" {
		return unknown
	}

	words := strings.Split(status, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// FormatPublishDates renders a publication range as "Jan 2, 2006 to Present".
// A missing start is shown as "?" and a missing end as "Present".
func FormatPublishDates(p jikan.Published) string {
	if p.From == "" && p.To == "" {
		return unknown
	}

	from := "?"
	if p.From != "" {
		from = FormatDate(p.FromTime())
	}

	to := "Present"
	if p.To != "" {
		to = FormatDate(p.ToTime())
	}

	return from + " to " + to
}

// FormatDate formats t as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return unknown
	}
	return t.Format("Jan 2, 2006")
}

// FormatYear returns the year publication started
func FormatYear(p jikan.Published) string {
	t := p.FromTime()
	if t.IsZero() {
		return unknown
	}
	return strconv.Itoa(t.Year())
}

// FormatNumber inserts comma thousands separators
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var sb strings.Builder
	sb.WriteString(sign)
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > len(sign) {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// FormatNames joins resource names with ", "
func FormatNames(resources []jikan.Resource) string {
	if len(resources) == 0 {
		return unknown
	}
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

// FormatScore renders a score with one decimal, or N/A when unscored
func FormatScore(score *float64) string {
	if score == nil || *score == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}

// FormatCount renders a chapter or volume count. Jikan leaves these null
// while a series is publishing.
func FormatCount(n *int) string {
	if n == nil || *n == 0 {
		return unknown
	}
	return strconv.Itoa(*n)
}

// FormatRank renders a popularity rank as "#19"
func FormatRank(rank int) string {
	if rank <= 0 {
		return "#N/A"
	}
	return "#" + strconv.Itoa(rank)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
