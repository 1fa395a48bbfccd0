package gallery

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

const (
	PageSize       = 5
	PlaceholderURL = "/static/img/photo-placeholder.svg"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-2006",
}

// Pair is one before/after slot of the gallery. A nil URL means the side
// is missing; Display* then holds the placeholder.
type Pair struct {
	BeforeID       int64   `json:"before_id,omitempty"`
	AfterID        int64   `json:"after_id,omitempty"`
	BeforePhotoURL *string `json:"before_photo_url"`
	AfterPhotoURL  *string `json:"after_photo_url"`
	BeforeDisplay  string  `json:"before_display"`
	AfterDisplay   string  `json:"after_display"`
	Date           string  `json:"date,omitempty"`
	ServiceName    string  `json:"service_name,omitempty"`

	at time.Time
}

// Zip aligns before[i] with after[i]. The result has as many entries as
// the longer side.
func Zip(before, after []models.GalleryPhoto) []Pair {
	n := max(len(before), len(after))
	out := make([]Pair, 0, n)

	for i := 0; i < n; i++ {
		var b, a *models.GalleryPhoto
		if i < len(before) {
			b = &before[i]
		}
		if i < len(after) {
			a = &after[i]
		}
		out = append(out, newPair(b, a))
	}
	return out
}

func newPair(b, a *models.GalleryPhoto) Pair {
	p := Pair{
		BeforeDisplay: PlaceholderURL,
		AfterDisplay:  PlaceholderURL,
	}

	if b != nil {
		p.BeforeID = b.ID
		if b.PhotoURL != "" {
			url := b.PhotoURL
			p.BeforePhotoURL = &url
			p.BeforeDisplay = url
		}
		p.Date = b.Date
		p.ServiceName = b.ServiceName
	}
	if a != nil {
		p.AfterID = a.ID
		if a.PhotoURL != "" {
			url := a.PhotoURL
			p.AfterPhotoURL = &url
			p.AfterDisplay = url
		}
		if p.Date == "" {
			p.Date = a.Date
		}
		if p.ServiceName == "" {
			p.ServiceName = a.ServiceName
		}
	}

	p.at, _ = parseDate(p.Date)
	return p
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Dated reports whether the pair carries a readable date.
func (p Pair) Dated() bool {
	return !p.at.IsZero()
}

// SortByDateDesc orders pairs newest first. Pairs without a readable date
// go last; ties keep their order.
func SortByDateDesc(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		switch {
		case a.Dated() && b.Dated():
			return a.at.After(b.at)
		case a.Dated():
			return true
		default:
			return false
		}
	})
}

// Offset is the backend offset of a 1-based page number.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
