// Package gen provides deterministic Go code generation for expanded
// dictionaries.
//
// Generation approach uses text/template + x/tools/imports for readable,
// gofmt-clean Go code. One revision produces one package:
//   - <pkg>.go: BeginString, Version, the MsgType Registry, Decode and Crack
//   - <message>.go: the message record, its group entry records and its
//     handler interface
//   - enum/enums.go: one named type per field with declared values
package gen
