package models

// OperationalSlots is the fixed, ordered set of bookable times of day:
// hourly from opening (09:00) to the last intake (16:00).
var OperationalSlots = []string{
	"09:00:00", "10:00:00", "11:00:00", "12:00:00",
	"13:00:00", "14:00:00", "15:00:00", "16:00:00",
}

// ValidSlotTime reports whether t (HH:MM:SS) is a bookable time of day.
func ValidSlotTime(t string) bool {
	for _, s := range OperationalSlots {
		if s == t {
			return true
		}
	}
	return false
}

// Slot is a derived availability view for one time of day on a given date.
// Never persisted; recomputed on every query.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    int    `json:"booked"`
	Capacity  int    `json:"capacity"`
}
