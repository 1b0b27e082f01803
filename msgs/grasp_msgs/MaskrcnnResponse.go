// Automatically generated from the message definition "grasp_msgs/maskrcnnResponse.msg"
package grasp_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/binpick/graspros/msgs"
)

type _MsgMaskrcnnResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMaskrcnnResponse) Text() string {
	return t.text
}

func (t *_MsgMaskrcnnResponse) Name() string {
	return t.name
}

func (t *_MsgMaskrcnnResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMaskrcnnResponse) NewMessage() msgs.Message {
	m := new(MaskrcnnResponse)
	m.Instances = []SegmentedObject{}
	return m
}

var (
	MsgMaskrcnnResponse = &_MsgMaskrcnnResponse{
		`
grasp_msgs/SegmentedObject[] instances
`,
		"grasp_msgs/maskrcnnResponse",
		"cc83d42fed5176ad89558e32abd933ce",
	}
)

type MaskrcnnResponse struct {
	Instances []SegmentedObject `rosmsg:"instances:SegmentedObject[]"`
}

func (m *MaskrcnnResponse) Type() msgs.MessageType {
	return MsgMaskrcnnResponse
}

func (m *MaskrcnnResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Instances)))
	for _, e := range m.Instances {
		if err = e.Serialize(buf); err != nil {
			return err
		}
	}
	return err
}

func (m *MaskrcnnResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Instances = make([]SegmentedObject, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Instances[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	return err
}
