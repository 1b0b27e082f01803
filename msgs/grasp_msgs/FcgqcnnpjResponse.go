// Automatically generated from the message definition "grasp_msgs/fcgqcnnpjResponse.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
)

type _MsgFcgqcnnpjResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFcgqcnnpjResponse) Text() string {
	return t.text
}

func (t *_MsgFcgqcnnpjResponse) Name() string {
	return t.name
}

func (t *_MsgFcgqcnnpjResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFcgqcnnpjResponse) NewMessage() msgs.Message {
	m := new(FcgqcnnpjResponse)
	m.Grasp = GQCNNGrasp{}
	return m
}

var (
	MsgFcgqcnnpjResponse = &_MsgFcgqcnnpjResponse{
		`
grasp_msgs/GQCNNGrasp grasp
`,
		"grasp_msgs/fcgqcnnpjResponse",
		"b8e97455d988c689e3de9fe1fff5dcef",
	}
)

type FcgqcnnpjResponse struct {
	Grasp GQCNNGrasp `rosmsg:"grasp:GQCNNGrasp"`
}

func (m *FcgqcnnpjResponse) Type() msgs.MessageType {
	return MsgFcgqcnnpjResponse
}

func (m *FcgqcnnpjResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Grasp.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FcgqcnnpjResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Grasp.Deserialize(buf); err != nil {
		return err
	}
	return err
}
