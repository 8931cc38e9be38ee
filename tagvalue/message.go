package tagvalue

import "strings"

// Message is an in-memory MessageView with a separate header section.
type Message struct {
	Header FieldMap
	Body   FieldMap
}

var _ MessageView = (*Message)(nil)

func NewMessage() *Message {
	return &Message{}
}

func (m *Message) MsgType() (string, bool) {
	return m.Header.Field(TagMsgType)
}

func (m *Message) SetMsgType(msgType string) {
	m.Header.SetField(TagMsgType, msgType)
}

func (m *Message) Field(tag Tag) (string, bool) {
	return m.Body.Field(tag)
}

func (m *Message) SetField(tag Tag, value string) {
	m.Body.SetField(tag, value)
}

func (m *Message) Group(countTag Tag, n int) (View, error) {
	return m.Body.Group(countTag, n)
}

func (m *Message) NewGroup(countTag Tag) View {
	return m.Body.NewGroup(countTag)
}

func (m *Message) AddGroup(countTag Tag, entry View) {
	m.Body.AddGroup(countTag, entry)
}

// String renders the header followed by the body, using '|' as separator.
func (m *Message) String() string {
	var sb strings.Builder
	m.Header.write(&sb, '|')
	m.Body.write(&sb, '|')

	return sb.String()
}
