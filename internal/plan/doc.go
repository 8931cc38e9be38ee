// Package plan provides the resolution pipeline that turns a parsed
// dictionary into the Schema consumed by code generation.
//
// Resolution pipeline:
//  1. Build the field and component registries
//  2. Materialize enum types for every field with declared values
//  3. For each message:
//     - Inline components into the enclosing class
//     - Open a new class for every repeating group, rooted at the message
//     - Compute effective requiredness along the way
//  4. Check class, MsgType and item name uniqueness
//  5. Emit diagnostics (unused components and fields, renamed enum members)
package plan
