package schedule

import (
	"testing"
	"time"
)

func TestLastFullWeekFromMidweek(t *testing.T) {
	// Wednesday 2025-08-27 → window Mon 18th to Sun 24th.
	now := time.Date(2025, 8, 27, 12, 30, 0, 0, time.UTC)
	w := LastFullWeek(now)
	if w.ISOStart() != "2025-08-18" {
		t.Errorf("start = %s", w.ISOStart())
	}
	if w.ISOEnd() != "2025-08-24" {
		t.Errorf("end = %s", w.ISOEnd())
	}
}

func TestLastFullWeekFromMonday(t *testing.T) {
	// Monday immediately after the window closes.
	now := time.Date(2025, 8, 25, 6, 0, 0, 0, time.UTC)
	w := LastFullWeek(now)
	if w.ISOStart() != "2025-08-18" || w.ISOEnd() != "2025-08-24" {
		t.Errorf("window = %s .. %s", w.ISOStart(), w.ISOEnd())
	}
}

func TestLastFullWeekFromSunday(t *testing.T) {
	// A Sunday still belongs to the running week; the previous full week
	// ended the Sunday before.
	now := time.Date(2025, 8, 24, 23, 0, 0, 0, time.UTC)
	w := LastFullWeek(now)
	if w.ISOStart() != "2025-08-11" || w.ISOEnd() != "2025-08-17" {
		t.Errorf("window = %s .. %s", w.ISOStart(), w.ISOEnd())
	}
}

func TestWindowSpansSevenDays(t *testing.T) {
	w := LastFullWeek(time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC))
	if got := w.End.Sub(w.Start); got != 6*24*time.Hour {
		t.Errorf("expected Mon..Sun span of 6 days, got %v", got)
	}
	if w.Start.Weekday() != time.Monday {
		t.Errorf("start is %s, want Monday", w.Start.Weekday())
	}
	if w.End.Weekday() != time.Sunday {
		t.Errorf("end is %s, want Sunday", w.End.Weekday())
	}
}

func TestDisplayFormat(t *testing.T) {
	w := LastFullWeek(time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC))
	if w.DisplayStart() != "18/08/2025" || w.DisplayEnd() != "24/08/2025" {
		t.Errorf("display = %s .. %s", w.DisplayStart(), w.DisplayEnd())
	}
}
