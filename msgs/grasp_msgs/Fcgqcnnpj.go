// Automatically generated from the service definition "grasp_msgs/fcgqcnnpj.srv"
package grasp_msgs

import (
	"github.com/binpick/graspros/msgs"
)

// Service type metadata
type _SrvFcgqcnnpj struct {
	name    string
	md5sum  string
	text    string
	reqType msgs.MessageType
	resType msgs.MessageType
}

func (t *_SrvFcgqcnnpj) Name() string                   { return t.name }
func (t *_SrvFcgqcnnpj) MD5Sum() string                 { return t.md5sum }
func (t *_SrvFcgqcnnpj) Text() string                   { return t.text }
func (t *_SrvFcgqcnnpj) RequestType() msgs.MessageType  { return t.reqType }
func (t *_SrvFcgqcnnpj) ResponseType() msgs.MessageType { return t.resType }
func (t *_SrvFcgqcnnpj) NewService() msgs.Service {
	return new(Fcgqcnnpj)
}

var (
	SrvFcgqcnnpj = &_SrvFcgqcnnpj{
		"grasp_msgs/fcgqcnnpj",
		"72bec3422d5dbac69a3460442bc5463f",
		`# Plan a parallel-jaw grasp with a fully-convolutional GQ-CNN,
# restricted to the pixels selected by the segmask.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/Image segmask
sensor_msgs/CameraInfo camera_info
---
grasp_msgs/GQCNNGrasp grasp
`,
		MsgFcgqcnnpjRequest,
		MsgFcgqcnnpjResponse,
	}
)

type Fcgqcnnpj struct {
	Request  FcgqcnnpjRequest
	Response FcgqcnnpjResponse
}

func (s *Fcgqcnnpj) ReqMessage() msgs.Message { return &s.Request }
func (s *Fcgqcnnpj) ResMessage() msgs.Message { return &s.Response }
