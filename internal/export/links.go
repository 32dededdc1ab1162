package export

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
)

// DefaultMatchDuration is the calendar event length when none is given.
const DefaultMatchDuration = time.Hour

var (
	ErrNoDate     = errors.New("match has no date")
	ErrNoLocation = errors.New("match has no location")
)

const calendarStamp = "20060102T150405Z"

// CalendarURL builds a Google Calendar event template for the match.
func CalendarURL(info lineup.MatchInfo, d time.Duration) (string, error) {
	if info.Date.IsZero() {
		return "", ErrNoDate
	}
	if d <= 0 {
		d = DefaultMatchDuration
	}
	start := info.Date.UTC()
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", Title(info))
	q.Set("dates", start.Format(calendarStamp)+"/"+start.Add(d).Format(calendarStamp))
	if loc := strings.TrimSpace(info.Location); loc != "" {
		q.Set("location", loc)
	}
	return "https://calendar.google.com/calendar/render?" + q.Encode(), nil
}

// MapsURL builds a Google Maps directions link to the match location.
func MapsURL(location string) (string, error) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return "", ErrNoLocation
	}
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", loc)
	return "https://www.google.com/maps/dir/?" + q.Encode(), nil
}
