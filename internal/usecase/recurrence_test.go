package usecase

import (
	"testing"
	"time"
)

func TestNextMonthlySendDate(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		day  int
		want time.Time
	}{
		{name: "clamped to april", now: time.Date(2025, time.March, 31, 10, 0, 0, 0, testLocation), day: 31, want: time.Date(2025, time.April, 30, 0, 0, 0, 0, testLocation)},
		{name: "february", now: time.Date(2025, time.January, 15, 8, 0, 0, 0, testLocation), day: 30, want: time.Date(2025, time.February, 28, 0, 0, 0, 0, testLocation)},
		{name: "leap february", now: time.Date(2024, time.January, 31, 8, 0, 0, 0, testLocation), day: 31, want: time.Date(2024, time.February, 29, 0, 0, 0, 0, testLocation)},
		{name: "year rollover", now: time.Date(2025, time.December, 10, 23, 0, 0, 0, testLocation), day: 5, want: time.Date(2026, time.January, 5, 0, 0, 0, 0, testLocation)},
		// 01:00 UTC on May 1st is still April 30th in Sao Paulo.
		{name: "local month", now: time.Date(2025, time.May, 1, 1, 0, 0, 0, time.UTC), day: 10, want: time.Date(2025, time.May, 10, 0, 0, 0, 0, testLocation)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextMonthlySendDate(tc.now, tc.day, testLocation)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAddMonthClamped(t *testing.T) {
	got := addMonthClamped(time.Date(2025, time.January, 31, 0, 0, 0, 0, testLocation), testLocation)
	want := time.Date(2025, time.February, 28, 0, 0, 0, 0, testLocation)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = addMonthClamped(time.Date(2025, time.June, 15, 12, 30, 0, 0, testLocation), testLocation)
	want = time.Date(2025, time.July, 15, 12, 30, 0, 0, testLocation)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestClampDay(t *testing.T) {
	if d := clampDay(2025, time.April, 31); d != 30 {
		t.Fatalf("expected 30, got %d", d)
	}
	if d := clampDay(2025, time.April, 0); d != 1 {
		t.Fatalf("expected 1, got %d", d)
	}
	if d := clampDay(2025, time.April, 12); d != 12 {
		t.Fatalf("expected 12, got %d", d)
	}
}
