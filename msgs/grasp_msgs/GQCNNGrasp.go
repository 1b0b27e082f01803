// Automatically generated from the message definition "grasp_msgs/GQCNNGrasp.msg"
package grasp_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/binpick/graspros/msgs"
	"github.com/binpick/graspros/msgs/geometry_msgs"
	"github.com/binpick/graspros/msgs/sensor_msgs"
)

const (
	GQCNNGrasp_PARALLEL_JAW uint8 = 0
	GQCNNGrasp_SUCTION      uint8 = 1
)

type _MsgGQCNNGrasp struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgGQCNNGrasp) Text() string {
	return t.text
}

func (t *_MsgGQCNNGrasp) Name() string {
	return t.name
}

func (t *_MsgGQCNNGrasp) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgGQCNNGrasp) NewMessage() msgs.Message {
	m := new(GQCNNGrasp)
	m.Pose = geometry_msgs.Pose{}
	m.QValue = 0.0
	m.Angle = 0.0
	m.Depth = 0.0
	for i := 0; i < 2; i++ {
		m.CenterPx[i] = 0.0
	}
	m.GraspType = 0
	m.Thumbnail = sensor_msgs.Image{}
	return m
}

var (
	MsgGQCNNGrasp = &_MsgGQCNNGrasp{
		`# A planned grasp with its predicted quality.
uint8 PARALLEL_JAW=0
uint8 SUCTION=1

geometry_msgs/Pose pose
float64 q_value
float64 angle
float64 depth
float64[2] center_px
uint8 grasp_type
sensor_msgs/Image thumbnail
`,
		"grasp_msgs/GQCNNGrasp",
		"9267eecd86826400c7edd11c94269779",
	}
)

type GQCNNGrasp struct {
	Pose      geometry_msgs.Pose `rosmsg:"pose:Pose"`
	QValue    float64            `rosmsg:"q_value:float64"`
	Angle     float64            `rosmsg:"angle:float64"`
	Depth     float64            `rosmsg:"depth:float64"`
	CenterPx  [2]float64         `rosmsg:"center_px:float64[2]"`
	GraspType uint8              `rosmsg:"grasp_type:uint8"`
	Thumbnail sensor_msgs.Image  `rosmsg:"thumbnail:Image"`
}

func (m *GQCNNGrasp) Type() msgs.MessageType {
	return MsgGQCNNGrasp
}

func (m *GQCNNGrasp) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Pose.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.QValue)
	binary.Write(buf, binary.LittleEndian, m.Angle)
	binary.Write(buf, binary.LittleEndian, m.Depth)
	for _, e := range m.CenterPx {
		binary.Write(buf, binary.LittleEndian, e)
	}
	binary.Write(buf, binary.LittleEndian, m.GraspType)
	if err = m.Thumbnail.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *GQCNNGrasp) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Pose.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.QValue); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Angle); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Depth); err != nil {
		return err
	}
	{
		for i := 0; i < 2; i++ {
			if err = binary.Read(buf, binary.LittleEndian, &m.CenterPx[i]); err != nil {
				return err
			}
		}
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.GraspType); err != nil {
		return err
	}
	if err = m.Thumbnail.Deserialize(buf); err != nil {
		return err
	}
	return err
}
