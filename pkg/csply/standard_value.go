package csply

import "fmt"

// standardKind tags which variant of StandardValue is populated.
type standardKind uint8

const (
	standardInt standardKind = iota
	standardBool
)

// StandardValue is a small concrete value type covering the two cases
// most hand-written constraint problems need: signed integers and
// booleans. User value enums are free to wrap a StandardValue to
// inherit its arithmetic for the integer case instead of reimplementing
// Add/Sub/Abs themselves.
//
// Arithmetic on the Bool variant is a programming error: per the
// capability-misuse error kind, it panics rather than returning a
// degraded result.
type StandardValue struct {
	kind   standardKind
	intVal int64
	boolVal bool
}

// Int wraps an integer as a StandardValue.
func Int(v int64) StandardValue { return StandardValue{kind: standardInt, intVal: v} }

// Bool wraps a boolean as a StandardValue.
func Bool(v bool) StandardValue { return StandardValue{kind: standardBool, boolVal: v} }

// IsInt reports whether this value holds the integer variant.
func (v StandardValue) IsInt() bool { return v.kind == standardInt }

// IsBool reports whether this value holds the boolean variant.
func (v StandardValue) IsBool() bool { return v.kind == standardBool }

// IntValue returns the wrapped integer. Panics if the value is not an
// integer variant.
func (v StandardValue) IntValue() int64 {
	if v.kind != standardInt {
		panic("csply: IntValue called on a non-integer StandardValue")
	}
	return v.intVal
}

// BoolValue returns the wrapped boolean. Panics if the value is not a
// boolean variant.
func (v StandardValue) BoolValue() bool {
	if v.kind != standardBool {
		panic("csply: BoolValue called on a non-boolean StandardValue")
	}
	return v.boolVal
}

// String renders the value for diagnostics.
func (v StandardValue) String() string {
	switch v.kind {
	case standardInt:
		return fmt.Sprintf("%d", v.intVal)
	case standardBool:
		return fmt.Sprintf("%t", v.boolVal)
	default:
		return "<invalid StandardValue>"
	}
}

// Less implements Ordering. Bool is ordered false < true; comparing an
// Int against a Bool is a programming error and panics.
func (v StandardValue) Less(other StandardValue) bool {
	if v.kind != other.kind {
		panic("csply: Less called on StandardValues of different kinds")
	}
	switch v.kind {
	case standardInt:
		return v.intVal < other.intVal
	case standardBool:
		return !v.boolVal && other.boolVal
	default:
		return false
	}
}

// Add implements Arithmetic. Panics (capability misuse) if either
// operand is not the integer variant.
func (v StandardValue) Add(other StandardValue) StandardValue {
	if v.kind != standardInt || other.kind != standardInt {
		panic("csply: Add called on a non-integer StandardValue")
	}
	return Int(v.intVal + other.intVal)
}

// Sub implements Arithmetic. Panics (capability misuse) if either
// operand is not the integer variant.
func (v StandardValue) Sub(other StandardValue) StandardValue {
	if v.kind != standardInt || other.kind != standardInt {
		panic("csply: Sub called on a non-integer StandardValue")
	}
	return Int(v.intVal - other.intVal)
}

// Abs implements Arithmetic. Panics (capability misuse) if the value
// is not the integer variant.
func (v StandardValue) Abs() StandardValue {
	if v.kind != standardInt {
		panic("csply: Abs called on a non-integer StandardValue")
	}
	if v.intVal < 0 {
		return Int(-v.intVal)
	}
	return v
}

// Successor implements Range for the integer variant.
func (v StandardValue) Successor() StandardValue {
	if v.kind != standardInt {
		panic("csply: Successor called on a non-integer StandardValue")
	}
	return Int(v.intVal + 1)
}

// Distance implements Range for the integer variant.
func (v StandardValue) Distance(other StandardValue) int {
	if v.kind != standardInt || other.kind != standardInt {
		panic("csply: Distance called on a non-integer StandardValue")
	}
	d := other.intVal - v.intVal
	if d < 0 {
		d = -d
	}
	return int(d)
}
