// Automatically generated from the message definition "grasp_msgs/fcgqcnnpjRequest.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
	"github.com/binpick/graspros/msgs/sensor_msgs"
)

type _MsgFcgqcnnpjRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFcgqcnnpjRequest) Text() string {
	return t.text
}

func (t *_MsgFcgqcnnpjRequest) Name() string {
	return t.name
}

func (t *_MsgFcgqcnnpjRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFcgqcnnpjRequest) NewMessage() msgs.Message {
	m := new(FcgqcnnpjRequest)
	m.ColorImage = sensor_msgs.Image{}
	m.DepthImage = sensor_msgs.Image{}
	m.Segmask = sensor_msgs.Image{}
	m.CameraInfo = sensor_msgs.CameraInfo{}
	return m
}

var (
	MsgFcgqcnnpjRequest = &_MsgFcgqcnnpjRequest{
		`# Plan a parallel-jaw grasp with a fully-convolutional GQ-CNN,
# restricted to the pixels selected by the segmask.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/Image segmask
sensor_msgs/CameraInfo camera_info
`,
		"grasp_msgs/fcgqcnnpjRequest",
		"7db86c02dd3ce9e0cc0f5d87054b1ebe",
	}
)

type FcgqcnnpjRequest struct {
	ColorImage sensor_msgs.Image      `rosmsg:"color_image:Image"`
	DepthImage sensor_msgs.Image      `rosmsg:"depth_image:Image"`
	Segmask    sensor_msgs.Image      `rosmsg:"segmask:Image"`
	CameraInfo sensor_msgs.CameraInfo `rosmsg:"camera_info:CameraInfo"`
}

func (m *FcgqcnnpjRequest) Type() msgs.MessageType {
	return MsgFcgqcnnpjRequest
}

func (m *FcgqcnnpjRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.ColorImage.Serialize(buf); err != nil {
		return err
	}
	if err = m.DepthImage.Serialize(buf); err != nil {
		return err
	}
	if err = m.Segmask.Serialize(buf); err != nil {
		return err
	}
	if err = m.CameraInfo.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FcgqcnnpjRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.ColorImage.Deserialize(buf); err != nil {
		return err
	}
	if err = m.DepthImage.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Segmask.Deserialize(buf); err != nil {
		return err
	}
	if err = m.CameraInfo.Deserialize(buf); err != nil {
		return err
	}
	return err
}
