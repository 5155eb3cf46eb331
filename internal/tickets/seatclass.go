package tickets

import "skybook/internal/planes"

// SeatClass is the fare tier of a ticket. It determines price, weight
// allowance and the seat-code namespace.
type SeatClass string

const (
	ClassEconomy    SeatClass = "ECONOMY"
	ClassBusiness   SeatClass = "BUSINESS"
	ClassFirstClass SeatClass = "FIRSTCLASS"
)

func (c SeatClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirstClass:
		return true
	default:
		return false
	}
}

// Price is fixed per class so clients cannot tamper with fares.
func (c SeatClass) Price() float64 {
	switch c {
	case ClassBusiness:
		return 200
	case ClassFirstClass:
		return 500
	default:
		return 100
	}
}

// WeightKG is the checked baggage allowance per class.
func (c SeatClass) WeightKG() int {
	switch c {
	case ClassBusiness:
		return 30
	case ClassFirstClass:
		return 50
	default:
		return 20
	}
}

// Prefix keeps the seat-code namespaces of the classes disjoint.
func (c SeatClass) Prefix() string {
	switch c {
	case ClassBusiness:
		return "B"
	case ClassFirstClass:
		return "F"
	default:
		return ""
	}
}

// PlaneSeats returns the capacity ceiling for the class on a plane.
func (c SeatClass) PlaneSeats(plane *planes.Plane) int {
	switch c {
	case ClassBusiness:
		return plane.NBusinessSeats
	case ClassFirstClass:
		return plane.NFirstClassSeats
	default:
		return plane.NEconomySeats
	}
}

// AllClasses in display order.
func AllClasses() []SeatClass {
	return []SeatClass{ClassEconomy, ClassBusiness, ClassFirstClass}
}
