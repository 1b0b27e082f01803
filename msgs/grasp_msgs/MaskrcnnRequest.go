// Automatically generated from the message definition "grasp_msgs/maskrcnnRequest.msg"
package grasp_msgs

import (
	"bytes"

	"github.com/binpick/graspros/msgs"
	"github.com/binpick/graspros/msgs/sensor_msgs"
)

type _MsgMaskrcnnRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMaskrcnnRequest) Text() string {
	return t.text
}

func (t *_MsgMaskrcnnRequest) Name() string {
	return t.name
}

func (t *_MsgMaskrcnnRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMaskrcnnRequest) NewMessage() msgs.Message {
	m := new(MaskrcnnRequest)
	m.ColorImage = sensor_msgs.Image{}
	m.DepthImage = sensor_msgs.Image{}
	m.CameraInfo = sensor_msgs.CameraInfo{}
	return m
}

var (
	MsgMaskrcnnRequest = &_MsgMaskrcnnRequest{
		`# Segment object instances in a registered color/depth image pair.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/CameraInfo camera_info
`,
		"grasp_msgs/maskrcnnRequest",
		"03b0dc52e65aaa491bdce634928a0bcd",
	}
)

type MaskrcnnRequest struct {
	ColorImage sensor_msgs.Image      `rosmsg:"color_image:Image"`
	DepthImage sensor_msgs.Image      `rosmsg:"depth_image:Image"`
	CameraInfo sensor_msgs.CameraInfo `rosmsg:"camera_info:CameraInfo"`
}

func (m *MaskrcnnRequest) Type() msgs.MessageType {
	return MsgMaskrcnnRequest
}

func (m *MaskrcnnRequest) Serialize(buf *bytes.Buffer) error {
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

func (m *MaskrcnnRequest) Deserialize(buf *bytes.Reader) error {
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
