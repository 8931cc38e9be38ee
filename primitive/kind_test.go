package primitive_test

import (
	"fmt"

	"fixdict-generator/primitive"
)

func Example() {
	for _, name := range []string{"STRING", "char", "NUMINGROUP", "QTY", "UTCTIMESTAMP", "LOCALMKTDATE", "BOOLEAN", "BLOB"} {
		kind, ok := primitive.Lookup(name)
		fmt.Println(name, kind, ok)
	}
	// Output:
	// STRING KindString true
	// char KindChar true
	// NUMINGROUP KindInt true
	// QTY KindFloat true
	// UTCTIMESTAMP KindTimestamp true
	// LOCALMKTDATE KindDate true
	// BOOLEAN KindBoolean true
	// BLOB KindEnum(0) false
}
