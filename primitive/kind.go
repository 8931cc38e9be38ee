package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the semantic primitive a dictionary field type maps to.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindChar
	KindBoolean
	KindInt
	KindFloat
	KindTimestamp
	KindDate

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindTimestamp, KindDate:
		return true
	}
}

// GoType is the Go type a record field of this kind is declared with.
func (k KindEnum) GoType() string {
	switch k {
	default:
		panic("no Go type for invalid kind: " + k.String())
	case KindString, KindChar:
		return "string"
	case KindBoolean:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindTimestamp, KindDate:
		return "time.Time"
	}
}

// EnumGoType is the underlying type of a generated enum of this kind.
// Temporal enums keep their literal wire form.
func (k KindEnum) EnumGoType() string {
	if k.IsTemporal() {
		return "string"
	}

	return k.GoType()
}

// Converter is the suffix of the runtime Parse/Format pair for this kind.
func (k KindEnum) Converter() string {
	switch k {
	default:
		panic("no converter for invalid kind: " + k.String())
	case KindString:
		return "String"
	case KindChar:
		return "Char"
	case KindBoolean:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindTimestamp:
		return "Timestamp"
	case KindDate:
		return "Date"
	}
}

// EnumConverter is the converter used by generated enums of this kind.
func (k KindEnum) EnumConverter() string {
	if k.IsTemporal() {
		return "String"
	}

	return k.Converter()
}
