// Package booking holds the seat-selection state logic that used to live in
// the browser: the venue's seat sections, seat-label generation and the
// compressed label format stored with a reservation.
package booking

import (
	"fmt"
	"math/rand"
)

// SeatSection is a named price/inventory bucket within the stadium.
type SeatSection struct {
	ID             string
	Name           string
	Price          float64
	AvailableSeats int
	TotalSeats     int
}

var sections = []SeatSection{
	{ID: "tribune-nord", Name: "Tribune Nord", Price: 150, AvailableSeats: 45, TotalSeats: 100},
	{ID: "tribune-sud", Name: "Tribune Sud", Price: 150, AvailableSeats: 32, TotalSeats: 100},
	{ID: "tribune-est", Name: "Tribune Est", Price: 200, AvailableSeats: 28, TotalSeats: 80},
	{ID: "tribune-ouest", Name: "Tribune Ouest", Price: 200, AvailableSeats: 15, TotalSeats: 80},
	{ID: "vip-central", Name: "VIP Central", Price: 500, AvailableSeats: 8, TotalSeats: 20},
	{ID: "loge-presidentielle", Name: "Loge Présidentielle", Price: 1000, AvailableSeats: 2, TotalSeats: 10},
}

// Sections returns the stadium's seat sections.
func Sections() []SeatSection {
	out := make([]SeatSection, len(sections))
	copy(out, sections)
	return out
}

// SectionByID looks up a section by its identifier.
func SectionByID(id string) (SeatSection, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return SeatSection{}, false
}

// GenerateSeats picks quantity seat labels in a section. Labels are the
// section's initial plus a number, e.g. "T12" for Tribune Nord.
func GenerateSeats(section SeatSection, quantity int, rng *rand.Rand) []string {
	if quantity <= 0 {
		return nil
	}

	labels := make([]string, 0, quantity)
	initial := []rune(section.Name)[0]
	for i := 0; i < quantity; i++ {
		labels = append(labels, fmt.Sprintf("%c%d", initial, rng.Intn(50)+1))
	}
	return labels
}

// CompressSeatLabels collapses a seat list to the compact string stored with
// the reservation: one seat verbatim, two as "[a - b]", more as "[a ... b]".
func CompressSeatLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return fmt.Sprintf("[%s - %s]", labels[0], labels[len(labels)-1])
	default:
		return fmt.Sprintf("[%s ... %s]", labels[0], labels[len(labels)-1])
	}
}
