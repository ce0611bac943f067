package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for lengths. The engine
// itself works in points; other units only appear at the CLI boundary.

// Unit represents the unit a length value was written in.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to target unit. Supported targets: UnitMM, UnitPT.
func (l Length) To(target Unit) float64 {
	switch l.Unit {
	case UnitMM:
		if target == UnitPT {
			return l.Value * MmToPt
		}
		return l.Value
	case UnitCM:
		mm := l.Value * 10
		if target == UnitPT {
			return mm * MmToPt
		}
		return mm
	case UnitIN:
		mm := l.Value * 25.4
		if target == UnitPT {
			return mm * MmToPt
		}
		return mm
	case UnitPT:
		if target == UnitMM || target == UnitNone {
			return l.Value * PtToMm
		}
		return l.Value
	default:
		// Unit-less values pass through unchanged.
		return l.Value
	}
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

// ParseLength parses a length string such as "70", "70pt", "25mm", "2.5cm"
// or "1in". A bare number is taken as points.
func ParseLength(value string) (Length, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	lower := strings.ToLower(v)
	unit := UnitPT
	num := lower
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(lower, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(lower, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("cannot parse length %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
