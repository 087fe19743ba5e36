package render

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/kimd61/manga-prototype1/jikan"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Unknown"},
		{"on_hiatus", "On Hiatus"},
		{"Finished", "Finished"},
		{"PUBLISHING", "Publishing"},
		{"not_yet_published", "Not Yet Published"},
		{"élan_ÉTÉ", "Élan Été"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatStatus(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatPublishDates(t *testing.T) {
	tests := []struct {
		name string
		in   jikan.Published
		want string
	}{
		{"both missing", jikan.Published{}, "Unknown"},
		{"ongoing", jikan.Published{From: "1998-09-03T00:00:00+00:00"}, "Sep 3, 1998 to Present"},
		{"finished", jikan.Published{From: "1989-08-25T00:00:00+00:00", To: "2021-09-10T00:00:00+00:00"}, "Aug 25, 1989 to Sep 10, 2021"},
		{"unknown start", jikan.Published{To: "2015-05-21T00:00:00+00:00"}, "? to May 21, 2015"},
		{"invalid start", jikan.Published{From: "soon"}, "Unknown to Present"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPublishDates(tt.in))
		})
	}
}

func TestFormatDateAndYear(t *testing.T) {
	assert.Equal(t, "Unknown", FormatDate(time.Time{}))
	assert.Equal(t, "Jan 2, 2006", FormatDate(time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, "1998", FormatYear(jikan.Published{From: "1998-09-03T00:00:00+00:00"}))
	assert.Equal(t, "Unknown", FormatYear(jikan.Published{}))
	assert.Equal(t, "Unknown", FormatYear(jikan.Published{From: "garbage"}))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, "Unknown", FormatNames(nil))
	assert.Equal(t, "Inoue, Takehiko, Yoshikawa, Eiji", FormatNames([]jikan.Resource{
		{Name: "Inoue, Takehiko"},
		{Name: "Yoshikawa, Eiji"},
	}))
}

func TestFormatScoreAndCount(t *testing.T) {
	assert.Equal(t, "N/A", FormatScore(nil))
	assert.Equal(t, "N/A", FormatScore(floatPtr(0)))
	assert.Equal(t, "9.2", FormatScore(floatPtr(9.24)))
	assert.Equal(t, "8.0", FormatScore(floatPtr(8)))

	assert.Equal(t, "Unknown", FormatCount(nil))
	assert.Equal(t, "Unknown", FormatCount(intPtr(0)))
	assert.Equal(t, "327", FormatCount(intPtr(327)))

	assert.Equal(t, "#N/A", FormatRank(0))
	assert.Equal(t, "#19", FormatRank(19))
}
