// Automatically generated from the message definition "grasp_msgs/gqcnnpjRequest.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
	"github.com/binpick/graspros/msgs/sensor_msgs"
)

type _MsgGqcnnpjRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgGqcnnpjRequest) Text() string {
	return t.text
}

func (t *_MsgGqcnnpjRequest) Name() string {
	return t.name
}

func (t *_MsgGqcnnpjRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgGqcnnpjRequest) NewMessage() msgs.Message {
	m := new(GqcnnpjRequest)
	m.ColorImage = sensor_msgs.Image{}
	m.DepthImage = sensor_msgs.Image{}
	m.CameraInfo = sensor_msgs.CameraInfo{}
	return m
}

var (
	MsgGqcnnpjRequest = &_MsgGqcnnpjRequest{
		`# Plan a parallel-jaw grasp from a registered color/depth image pair.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/CameraInfo camera_info
`,
		"grasp_msgs/gqcnnpjRequest",
		"03b0dc52e65aaa491bdce634928a0bcd",
	}
)

type GqcnnpjRequest struct {
	ColorImage sensor_msgs.Image      `rosmsg:"color_image:Image"`
	DepthImage sensor_msgs.Image      `rosmsg:"depth_image:Image"`
	CameraInfo sensor_msgs.CameraInfo `rosmsg:"camera_info:CameraInfo"`
}

func (m *GqcnnpjRequest) Type() msgs.MessageType {
	return MsgGqcnnpjRequest
}

func (m *GqcnnpjRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.ColorImage.Serialize(buf); err != nil {
		return err
	}
	if err = m.DepthImage.Serialize(buf); err != nil {
		return err
	}
	if err = m.CameraInfo.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *GqcnnpjRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.ColorImage.Deserialize(buf); err != nil {
		return err
	}
	if err = m.DepthImage.Deserialize(buf); err != nil {
		return err
	}
	if err = m.CameraInfo.Deserialize(buf); err != nil {
		return err
	}
	return err
}
