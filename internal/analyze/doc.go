// Package analyze builds the lookup registries of a dictionary: every field
// definition keyed by name and number, and every component and group
// definition keyed by its namespace path.
//
// Key types:
//   - FieldDef: number, name, primitive kind and converted enum values
//   - ComponentKey: namespace path + name of a reusable definition
//   - ComponentDef: ordered items of a component or a group body
package analyze
