// Automatically generated from the message definition "grasp_msgs/gqcnnsuctionResponse.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
)

type _MsgGqcnnsuctionResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgGqcnnsuctionResponse) Text() string {
	return t.text
}

func (t *_MsgGqcnnsuctionResponse) Name() string {
	return t.name
}

func (t *_MsgGqcnnsuctionResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgGqcnnsuctionResponse) NewMessage() msgs.Message {
	m := new(GqcnnsuctionResponse)
	m.Grasp = GQCNNGrasp{}
	return m
}

var (
	MsgGqcnnsuctionResponse = &_MsgGqcnnsuctionResponse{
		`
grasp_msgs/GQCNNGrasp grasp
`,
		"grasp_msgs/gqcnnsuctionResponse",
		"b8e97455d988c689e3de9fe1fff5dcef",
	}
)

type GqcnnsuctionResponse struct {
	Grasp GQCNNGrasp `rosmsg:"grasp:GQCNNGrasp"`
}

func (m *GqcnnsuctionResponse) Type() msgs.MessageType {
	return MsgGqcnnsuctionResponse
}

func (m *GqcnnsuctionResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Grasp.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *GqcnnsuctionResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Grasp.Deserialize(buf); err != nil {
		return err
	}
	return err
}
