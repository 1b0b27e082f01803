// Automatically generated from the service definition "grasp_msgs/fcgqcnnsuction.srv"
package grasp_msgs

import (
	"github.com/binpick/graspros/msgs"
)

// Service type metadata
type _SrvFcgqcnnsuction struct {
	name    string
	md5sum  string
	text    string
	reqType msgs.MessageType
	resType msgs.MessageType
}

func (t *_SrvFcgqcnnsuction) Name() string                   { return t.name }
func (t *_SrvFcgqcnnsuction) MD5Sum() string                 { return t.md5sum }
func (t *_SrvFcgqcnnsuction) Text() string                   { return t.text }
func (t *_SrvFcgqcnnsuction) RequestType() msgs.MessageType  { return t.reqType }
func (t *_SrvFcgqcnnsuction) ResponseType() msgs.MessageType { return t.resType }
func (t *_SrvFcgqcnnsuction) NewService() msgs.Service {
	return new(Fcgqcnnsuction)
}

var (
	SrvFcgqcnnsuction = &_SrvFcgqcnnsuction{
		"grasp_msgs/fcgqcnnsuction",
		"72bec3422d5dbac69a3460442bc5463f",
		`# Plan a suction grasp with a fully-convolutional GQ-CNN,
# restricted to the pixels selected by the segmask.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/Image segmask
sensor_msgs/CameraInfo camera_info
---
grasp_msgs/GQCNNGrasp grasp
`,
		MsgFcgqcnnsuctionRequest,
		MsgFcgqcnnsuctionResponse,
	}
)

type Fcgqcnnsuction struct {
	Request  FcgqcnnsuctionRequest
	Response FcgqcnnsuctionResponse
}

func (s *Fcgqcnnsuction) ReqMessage() msgs.Message { return &s.Request }
func (s *Fcgqcnnsuction) ResMessage() msgs.Message { return &s.Response }
