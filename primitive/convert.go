package primitive

import (
	"fmt"
	"strconv"

	"fixdict-generator/tagvalue"
)

// ConvertEnum validates a dictionary enum literal against kind and returns
// the value a generated enum of that kind holds: string for text and
// temporal kinds, bool, int or float64 otherwise.
func ConvertEnum(kind KindEnum, literal string) (any, error) {
	switch kind {
	case KindString:
		return tagvalue.ParseString(literal)
	case KindChar:
		return tagvalue.ParseChar(literal)
	case KindBoolean:
		return tagvalue.ParseBool(literal)
	case KindInt:
		return tagvalue.ParseInt(literal)
	case KindFloat:
		return tagvalue.ParseFloat(literal)
	case KindTimestamp:
		if _, err := tagvalue.ParseTimestamp(literal); err != nil {
			return nil, err
		}

		return literal, nil
	case KindDate:
		if _, err := tagvalue.ParseDate(literal); err != nil {
			return nil, err
		}

		return literal, nil
	}

	return nil, fmt.Errorf("no converter for %s", kind)
}

// FormatEnum renders a value returned by ConvertEnum in its canonical wire form.
func FormatEnum(kind KindEnum, v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return tagvalue.FormatBool(val)
	case int:
		return tagvalue.FormatInt(val)
	case float64:
		return tagvalue.FormatFloat(val)
	}

	panic(fmt.Sprintf("unexpected %s enum value %T", kind, v))
}

// GoLiteral renders a value returned by ConvertEnum as a Go constant literal.
func GoLiteral(kind KindEnum, v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		lit := strconv.FormatFloat(val, 'g', -1, 64)
		if _, err := strconv.Atoi(lit); err == nil {
			lit += ".0"
		}

		return lit
	}

	panic(fmt.Sprintf("unexpected %s enum value %T", kind, v))
}
