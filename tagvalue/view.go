// Package tagvalue is the runtime used by generated message records.
// It exposes the tag=value message model the records decode from and
// encode into, the field converters, and the MsgType registry used for
// decoding and handler dispatch.
package tagvalue

// Tag is a field number.
type Tag int

const (
	TagBeginString Tag = 8
	TagMsgType     Tag = 35
)

// View is the field access surface of a message body or a group entry.
type View interface {
	// Field returns the raw value of tag and whether it is present.
	Field(tag Tag) (string, bool)
	// SetField sets tag, replacing any previous value.
	SetField(tag Tag, value string)
	// Group returns entry n of the repeating group counted by countTag.
	Group(countTag Tag, n int) (View, error)
	// NewGroup creates a detached entry for the group counted by countTag.
	NewGroup(countTag Tag) View
	// AddGroup appends an entry created by NewGroup and updates the count field.
	AddGroup(countTag Tag, entry View)
}

// MessageView is a View over a whole message, with access to its MsgType.
type MessageView interface {
	View
	MsgType() (string, bool)
	SetMsgType(msgType string)
}
