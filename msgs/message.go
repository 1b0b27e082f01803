package msgs

import (
	"bytes"
)

// MessageType describes a message schema known at compile time or loaded at
// runtime. Generated bindings expose one package-level MessageType value per
// message.
type MessageType interface {
	Text() string
	MD5Sum() string
	Name() string
	NewMessage() Message
}

// Message is one concrete message instance. Serialization is the ROS wire
// format: little-endian fields in declaration order, length-prefixed strings
// and variable arrays.
type Message interface {
	Type() MessageType
	Serialize(buf *bytes.Buffer) error
	Deserialize(buf *bytes.Reader) error
}
