package primitive

import (
	"sort"
	"strings"
)

// dictionaryTypes maps dictionary type names onto their primitive kind.
var dictionaryTypes = map[string]KindEnum{
	"STRING":              KindString,
	"CURRENCY":            KindString,
	"MULTIPLEVALUESTRING": KindString,
	"MULTIPLESTRINGVALUE": KindString,
	"MULTIPLECHARVALUE":   KindString,
	"EXCHANGE":            KindString,
	"DATA":                KindString,
	"MONTHYEAR":           KindString,
	"DAYOFMONTH":          KindString,
	"COUNTRY":             KindString,
	"TZTIMEONLY":          KindString,
	"TZTIMESTAMP":         KindString,
	"XMLDATA":             KindString,
	"LANGUAGE":            KindString,
	"UTCTIMEONLY":         KindString,
	"TIME":                KindString,

	"CHAR": KindChar,

	"BOOLEAN": KindBoolean,

	"INT":        KindInt,
	"NUMINGROUP": KindInt,
	"SEQNUM":     KindInt,
	"LENGTH":     KindInt,

	"FLOAT":       KindFloat,
	"PRICE":       KindFloat,
	"PRICEOFFSET": KindFloat,
	"AMT":         KindFloat,
	"QTY":         KindFloat,
	"PERCENTAGE":  KindFloat,

	"UTCTIMESTAMP": KindTimestamp,

	"UTCDATE":      KindDate,
	"UTCDATEONLY":  KindDate,
	"LOCALMKTDATE": KindDate,
	"DATE":         KindDate,
}

// Lookup resolves a dictionary type name. Names are matched case-insensitively.
func Lookup(name string) (KindEnum, bool) {
	k, ok := dictionaryTypes[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// DictionaryTypes lists every known dictionary type name in sorted order.
func DictionaryTypes() []string {
	names := make([]string, 0, len(dictionaryTypes))
	for name := range dictionaryTypes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
