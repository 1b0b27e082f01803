// Automatically generated from the message definition "grasp_msgs/fcgqcnnsuctionResponse.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
)

type _MsgFcgqcnnsuctionResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFcgqcnnsuctionResponse) Text() string {
	return t.text
}

func (t *_MsgFcgqcnnsuctionResponse) Name() string {
	return t.name
}

func (t *_MsgFcgqcnnsuctionResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFcgqcnnsuctionResponse) NewMessage() msgs.Message {
	m := new(FcgqcnnsuctionResponse)
	m.Grasp = GQCNNGrasp{}
	return m
}

var (
	MsgFcgqcnnsuctionResponse = &_MsgFcgqcnnsuctionResponse{
		`
grasp_msgs/GQCNNGrasp grasp
`,
		"grasp_msgs/fcgqcnnsuctionResponse",
		"b8e97455d988c689e3de9fe1fff5dcef",
	}
)

type FcgqcnnsuctionResponse struct {
	Grasp GQCNNGrasp `rosmsg:"grasp:GQCNNGrasp"`
}

func (m *FcgqcnnsuctionResponse) Type() msgs.MessageType {
	return MsgFcgqcnnsuctionResponse
}

func (m *FcgqcnnsuctionResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Grasp.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FcgqcnnsuctionResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Grasp.Deserialize(buf); err != nil {
		return err
	}
	return err
}
