// Package diagnostic provides the structured errors and warnings produced
// while compiling a dictionary.
//
// Key capabilities:
//   - Coded compile errors matched with errors.Is against sentinel values
//   - Location and line information for the offending dictionary node
//   - "did you mean" suggestions for unresolved names
//   - Non-fatal warnings and infos collected per compilation
package diagnostic
