// Automatically generated from the service definition "grasp_msgs/maskrcnn.srv"
package grasp_msgs

import (
	"github.com/binpick/graspros/msgs"
)

// Service type metadata
type _SrvMaskrcnn struct {
	name    string
	md5sum  string
	text    string
	reqType msgs.MessageType
	resType msgs.MessageType
}

func (t *_SrvMaskrcnn) Name() string                   { return t.name }
func (t *_SrvMaskrcnn) MD5Sum() string                 { return t.md5sum }
func (t *_SrvMaskrcnn) Text() string                   { return t.text }
func (t *_SrvMaskrcnn) RequestType() msgs.MessageType  { return t.reqType }
func (t *_SrvMaskrcnn) ResponseType() msgs.MessageType { return t.resType }
func (t *_SrvMaskrcnn) NewService() msgs.Service {
	return new(Maskrcnn)
}

var (
	SrvMaskrcnn = &_SrvMaskrcnn{
		"grasp_msgs/maskrcnn",
		"e4f26c05bb26aab6da3569cc028cb68a",
		`# Segment object instances in a registered color/depth image pair.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/CameraInfo camera_info
---
grasp_msgs/SegmentedObject[] instances
`,
		MsgMaskrcnnRequest,
		MsgMaskrcnnResponse,
	}
)

type Maskrcnn struct {
	Request  MaskrcnnRequest
	Response MaskrcnnResponse
}

func (s *Maskrcnn) ReqMessage() msgs.Message { return &s.Request }
func (s *Maskrcnn) ResMessage() msgs.Message { return &s.Response }
