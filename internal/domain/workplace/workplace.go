// Package workplace generates the static per-branch catalog of bookable
// resources. The catalog is configuration, not data: it is derived from the
// branch floor plans and never persisted.
package workplace

import "fmt"

// Resource types.
const (
	TypeDesk        = "workplace"
	TypeNegotiation = "negotiation"
	TypeConference  = "conference"
)

// Workplace is a bookable resource with map coordinates for the floor-plan
// view. Capacity is only set for rooms.
type Workplace struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Branch   string `json:"branch"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Capacity int    `json:"capacity,omitempty"`
}

// ForBranch returns the catalog for the given branch code. Unknown branches
// yield an empty list.
func ForBranch(branch string) []Workplace {
	switch branch {
	case "moscow":
		return moscowWorkplaces()
	case "spb":
		return spbWorkplaces()
	default:
		return []Workplace{}
	}
}

// moscowWorkplaces lays out 15 desks in a 5x3 grid plus three negotiation
// rooms and two conference halls.
func moscowWorkplaces() []Workplace {
	places := make([]Workplace, 0, 20)
	for i := 1; i <= 15; i++ {
		places = append(places, Workplace{
			ID:     fmt.Sprintf("moscow-wp-%d", i),
			Name:   fmt.Sprintf("Desk %d (PC-%02d)", i, i),
			Type:   TypeDesk,
			Branch: "moscow",
			X:      150 + ((i-1)%5)*70,
			Y:      100 + ((i-1)/5)*80,
		})
	}

	places = append(places,
		Workplace{ID: "moscow-neg-1", Name: "Meeting Room A", Type: TypeNegotiation, Branch: "moscow", X: 600, Y: 120, Capacity: 4},
		Workplace{ID: "moscow-neg-2", Name: "Meeting Room B", Type: TypeNegotiation, Branch: "moscow", X: 680, Y: 120, Capacity: 6},
		Workplace{ID: "moscow-neg-3", Name: "Meeting Room C", Type: TypeNegotiation, Branch: "moscow", X: 760, Y: 120, Capacity: 8},
		Workplace{ID: "moscow-conf-1", Name: "Conference Hall Grand", Type: TypeConference, Branch: "moscow", X: 600, Y: 250, Capacity: 30},
		Workplace{ID: "moscow-conf-2", Name: "Conference Hall Minor", Type: TypeConference, Branch: "moscow", X: 720, Y: 250, Capacity: 15},
	)
	return places
}

// spbWorkplaces lays out 15 desks plus two negotiation rooms and one
// conference hall.
func spbWorkplaces() []Workplace {
	places := make([]Workplace, 0, 18)
	for i := 1; i <= 15; i++ {
		places = append(places, Workplace{
			ID:     fmt.Sprintf("spb-wp-%d", i),
			Name:   fmt.Sprintf("Desk %d (SPB-%02d)", i, i),
			Type:   TypeDesk,
			Branch: "spb",
			X:      120 + ((i-1)%5)*70,
			Y:      80 + ((i-1)/5)*80,
		})
	}

	places = append(places,
		Workplace{ID: "spb-neg-1", Name: "Meeting Room North", Type: TypeNegotiation, Branch: "spb", X: 550, Y: 100, Capacity: 4},
		Workplace{ID: "spb-neg-2", Name: "Meeting Room Baltic", Type: TypeNegotiation, Branch: "spb", X: 630, Y: 100, Capacity: 6},
		Workplace{ID: "spb-conf-1", Name: "Conference Hall Neva", Type: TypeConference, Branch: "spb", X: 550, Y: 220, Capacity: 20},
	)
	return places
}
