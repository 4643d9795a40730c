// Package schedule computes the weekly reporting window.
package schedule

import "time"

// Window is the last full Monday-to-Sunday week before the reference time.
type Window struct {
	Start time.Time // Monday 00:00
	End   time.Time // Sunday 00:00 (date part is what matters)
}

// helsinkiOffset approximates Europe/Helsinki without tzdata on the host.
// Good enough for summer cron runs; adjust the cron entry in winter.
const helsinkiOffset = 3 * time.Hour

// Now returns the current time shifted to Helsinki local time.
func Now() time.Time {
	return time.Now().UTC().Add(helsinkiOffset)
}

// LastFullWeek returns the most recent complete Mon-Sun window before now.
func LastFullWeek(now time.Time) Window {
	// time.Weekday has Sunday=0; shift so Monday=0 like the reporting week.
	day := (int(now.Weekday()) + 6) % 7
	lastSun := now.AddDate(0, 0, -(day + 1))
	lastSun = time.Date(lastSun.Year(), lastSun.Month(), lastSun.Day(), 0, 0, 0, 0, lastSun.Location())
	lastMon := lastSun.AddDate(0, 0, -6)
	return Window{Start: lastMon, End: lastSun}
}

// DisplayStart formats the window start for the rendered brief.
func (w Window) DisplayStart() string { return w.Start.Format("02/01/2006") }

// DisplayEnd formats the window end for the rendered brief.
func (w Window) DisplayEnd() string { return w.End.Format("02/01/2006") }

// ISOStart formats the window start for provider queries.
func (w Window) ISOStart() string { return w.Start.Format("2006-01-02") }

// ISOEnd formats the window end for provider queries.
func (w Window) ISOEnd() string { return w.End.Format("2006-01-02") }
