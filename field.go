package stockpile

import "strconv"

// FieldKind discriminates the numeric representation of a FieldValue.
type FieldKind uint8

const (
	KindInteger FieldKind = iota
	KindFloat
)

// FieldValue is a tagged numeric value: a 64-bit signed integer or a 64-bit float.
// The zero value is Integer(0). FieldValues are comparable; equality requires
// matching kinds, so Int(2) != Float(2).
type FieldValue struct {
	kind FieldKind
	i    int64
	f    float64
}

// Int returns an Integer-tagged FieldValue.
func Int(v int64) FieldValue {
	return FieldValue{kind: KindInteger, i: v}
}

// Float returns a Float-tagged FieldValue.
func Float(v float64) FieldValue {
	return FieldValue{kind: KindFloat, f: v}
}

func (v FieldValue) Kind() FieldKind {
	return v.kind
}

// Int returns the integer payload. Zero when the value is Float-tagged.
func (v FieldValue) Int() int64 {
	return v.i
}

// Float64 returns the float payload. Zero when the value is Integer-tagged.
func (v FieldValue) Float64() float64 {
	return v.f
}

// AsFloat widens the value to float64 regardless of kind.
func (v FieldValue) AsFloat() float64 {
	if v.kind == KindInteger {
		return float64(v.i)
	}
	return v.f
}

func (v FieldValue) String() string {
	if v.kind == KindInteger {
		return "Integer(" + strconv.FormatInt(v.i, 10) + ")"
	}
	return "Float(" + strconv.FormatFloat(v.f, 'g', -1, 64) + ")"
}

// Combine adds two FieldValues under the promotion rule: Integer+Integer yields
// Integer, any combination involving a Float yields Float with the integer
// operand widened first. The operation is total and the numeric result is
// order-insensitive. Integer addition wraps on overflow (native int64 semantics).
func Combine(a, b FieldValue) FieldValue {
	if a.kind == KindInteger && b.kind == KindInteger {
		return Int(a.i + b.i)
	}
	return Float(a.AsFloat() + b.AsFloat())
}
