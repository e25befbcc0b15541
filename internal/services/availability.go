package services

import "github.com/Sakil71/doctors-portal-server/internal/models"

// BookedSlots collects the slots already taken for a treatment, matching
// bookings by exact name equality.
func BookedSlots(treatmentName string, bookings []models.Booking) []string {
	var booked []string
	for _, b := range bookings {
		if b.TreatmentName == treatmentName {
			booked = append(booked, b.Slot)
		}
	}
	return booked
}

// RemainingSlots returns the slots not present in booked, preserving the
// original order of slots.
func RemainingSlots(slots, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}

	remaining := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			remaining = append(remaining, s)
		}
	}
	return remaining
}

// ApplyAvailability rewrites each treatment's slot list to the slots still
// open given the bookings made for the requested date. The treatments
// themselves are not persisted back; availability is computed on every read.
func ApplyAvailability(treatments []models.Treatment, alreadyBooked []models.Booking) {
	for i := range treatments {
		booked := BookedSlots(treatments[i].Name, alreadyBooked)
		treatments[i].Slots = RemainingSlots(treatments[i].Slots, booked)
	}
}
