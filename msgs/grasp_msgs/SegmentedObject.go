// Automatically generated from the message definition "grasp_msgs/SegmentedObject.msg"
package grasp_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/binpick/graspros/msgs"
	"github.com/binpick/graspros/msgs/sensor_msgs"
)

type _MsgSegmentedObject struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgSegmentedObject) Text() string {
	return t.text
}

func (t *_MsgSegmentedObject) Name() string {
	return t.name
}

func (t *_MsgSegmentedObject) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgSegmentedObject) NewMessage() msgs.Message {
	m := new(SegmentedObject)
	m.ClassId = 0
	m.ClassName = ""
	m.Score = 0.0
	m.Mask = sensor_msgs.Image{}
	m.Bbox = sensor_msgs.RegionOfInterest{}
	return m
}

var (
	MsgSegmentedObject = &_MsgSegmentedObject{
		`# One segmented instance from the Mask R-CNN service.
int32 class_id
string class_name
float32 score
sensor_msgs/Image mask
sensor_msgs/RegionOfInterest bbox
`,
		"grasp_msgs/SegmentedObject",
		"06a4241b8980a76fd7543925f9110a37",
	}
)

type SegmentedObject struct {
	ClassId   int32                        `rosmsg:"class_id:int32"`
	ClassName string                       `rosmsg:"class_name:string"`
	Score     float32                      `rosmsg:"score:float32"`
	Mask      sensor_msgs.Image            `rosmsg:"mask:Image"`
	Bbox      sensor_msgs.RegionOfInterest `rosmsg:"bbox:RegionOfInterest"`
}

func (m *SegmentedObject) Type() msgs.MessageType {
	return MsgSegmentedObject
}

func (m *SegmentedObject) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.ClassId)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.ClassName))))
	buf.Write([]byte(m.ClassName))
	binary.Write(buf, binary.LittleEndian, m.Score)
	if err = m.Mask.Serialize(buf); err != nil {
		return err
	}
	if err = m.Bbox.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *SegmentedObject) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.ClassId); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.ClassName = string(data)
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Score); err != nil {
		return err
	}
	if err = m.Mask.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Bbox.Deserialize(buf); err != nil {
		return err
	}
	return err
}
