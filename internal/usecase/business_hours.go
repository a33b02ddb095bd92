package usecase

import (
	"fmt"
	"time"
)

// BusinessHours gates new conversations. CloseHour 24 means midnight;
// OpenHour > CloseHour spans midnight.
type BusinessHours struct {
	OpenHour  int
	CloseHour int
	Location  *time.Location
}

func AlwaysOpen() BusinessHours {
	return BusinessHours{OpenHour: 0, CloseHour: 24, Location: time.UTC}
}

func (b BusinessHours) IsOpen(t time.Time) bool {
	if b.OpenHour <= 0 && b.CloseHour >= 24 {
		return true
	}
	loc := b.Location
	if loc == nil {
		loc = time.UTC
	}
	h := t.In(loc).Hour()
	if b.OpenHour < b.CloseHour {
		return h >= b.OpenHour && h < b.CloseHour
	}
	return h >= b.OpenHour || h < b.CloseHour
}

// Label renders "08h–18h" for customer texts.
func (b BusinessHours) Label() string {
	return fmt.Sprintf("%02dh–%02dh", b.OpenHour, b.CloseHour)
}
