// Automatically generated from the message definition "grasp_msgs/gqcnnpjResponse.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
)

type _MsgGqcnnpjResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgGqcnnpjResponse) Text() string {
	return t.text
}

func (t *_MsgGqcnnpjResponse) Name() string {
	return t.name
}

func (t *_MsgGqcnnpjResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgGqcnnpjResponse) NewMessage() msgs.Message {
	m := new(GqcnnpjResponse)
	m.Grasp = GQCNNGrasp{}
	return m
}

var (
	MsgGqcnnpjResponse = &_MsgGqcnnpjResponse{
		`
grasp_msgs/GQCNNGrasp grasp
`,
		"grasp_msgs/gqcnnpjResponse",
		"b8e97455d988c689e3de9fe1fff5dcef",
	}
)

type GqcnnpjResponse struct {
	Grasp GQCNNGrasp `rosmsg:"grasp:GQCNNGrasp"`
}

func (m *GqcnnpjResponse) Type() msgs.MessageType {
	return MsgGqcnnpjResponse
}

func (m *GqcnnpjResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Grasp.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *GqcnnpjResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Grasp.Deserialize(buf); err != nil {
		return err
	}
	return err
}
