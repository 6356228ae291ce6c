// Package shipping computes shipping rates by applying an ordered list of rate policies to a request.
//
// Each Policy receives the running total and returns a new one; a Calculator starts from zero and applies its policies in order. Two calculators are provided:
//   - NewLegacyCalculator: the weekend surcharge applies to International shipments only, as part of the region multiplier.
//   - NewCalculator: the weekend surcharge is its own policy and applies to every shipment.
//
// Amounts are Money (cents). Multiplications round to the nearest cent, ties to even.
package shipping

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownSpeed  = errors.New("unknown shipping speed")
	ErrUnknownRegion = errors.New("unknown region")
)

// Speed is the delivery speed.
type Speed int

const (
	Standard Speed = iota
	Express
	Overnight
)

var speedNames = map[Speed]string{
	Standard:  "standard",
	Express:   "express",
	Overnight: "overnight",
}

func (s Speed) String() string {
	if name, ok := speedNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Speed(%d)", int(s))
}

// ParseSpeed parses a speed name case-insensitively.
func ParseSpeed(s string) (Speed, error) {
	for speed, name := range speedNames {
		if strings.EqualFold(s, name) {
			return speed, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
}

// Region is the destination region.
type Region int

const (
	Domestic Region = iota
	International
)

func (r Region) String() string {
	switch r {
	case Domestic:
		return "domestic"
	case International:
		return "international"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// ParseRegion parses a region name case-insensitively.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(s) {
	case "domestic":
		return Domestic, nil
	case "international":
		return International, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
}

// Request describes one shipment.
type Request struct {
	Speed    Speed
	Region   Region
	WeightKg float64
	ShipDate time.Time
}

// OnWeekend reports whether the ship date is a Saturday or Sunday.
func (r Request) OnWeekend() bool {
	switch r.ShipDate.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
