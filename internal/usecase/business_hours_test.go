package usecase

import (
	"testing"
	"time"
)

func TestBusinessHours(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 5, 10, h, 30, 0, 0, time.UTC) }

	t.Run("always open", func(t *testing.T) {
		b := AlwaysOpen()
		for h := 0; h < 24; h++ {
			if !b.IsOpen(at(h)) {
				t.Fatalf("expected open at %d", h)
			}
		}
	})

	t.Run("daytime window", func(t *testing.T) {
		b := BusinessHours{OpenHour: 8, CloseHour: 18, Location: time.UTC}
		for h, want := range map[int]bool{7: false, 8: true, 17: true, 18: false} {
			if got := b.IsOpen(at(h)); got != want {
				t.Fatalf("IsOpen(%d) = %v, want %v", h, got, want)
			}
		}
		if b.Label() != "08h–18h" {
			t.Fatalf("unexpected label %q", b.Label())
		}
	})

	t.Run("window over midnight", func(t *testing.T) {
		b := BusinessHours{OpenHour: 22, CloseHour: 6}
		for h, want := range map[int]bool{21: false, 23: true, 2: true, 6: false} {
			if got := b.IsOpen(at(h)); got != want {
				t.Fatalf("IsOpen(%d) = %v, want %v", h, got, want)
			}
		}
	})

	t.Run("location applied", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		b := BusinessHours{OpenHour: 8, CloseHour: 18, Location: loc}
		if b.IsOpen(at(10)) {
			t.Fatalf("10:30 UTC is 07:30 BRT, expected closed")
		}
		if !b.IsOpen(at(12)) {
			t.Fatalf("12:30 UTC is 09:30 BRT, expected open")
		}
	})
}
