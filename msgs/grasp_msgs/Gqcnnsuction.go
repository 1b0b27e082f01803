// Automatically generated from the service definition "grasp_msgs/gqcnnsuction.srv"
package grasp_msgs

import (
	"github.com/binpick/graspros/msgs"
)

// Service type metadata
type _SrvGqcnnsuction struct {
	name    string
	md5sum  string
	text    string
	reqType msgs.MessageType
	resType msgs.MessageType
}

func (t *_SrvGqcnnsuction) Name() string                   { return t.name }
func (t *_SrvGqcnnsuction) MD5Sum() string                 { return t.md5sum }
func (t *_SrvGqcnnsuction) Text() string                   { return t.text }
func (t *_SrvGqcnnsuction) RequestType() msgs.MessageType  { return t.reqType }
func (t *_SrvGqcnnsuction) ResponseType() msgs.MessageType { return t.resType }
func (t *_SrvGqcnnsuction) NewService() msgs.Service {
	return new(Gqcnnsuction)
}

var (
	SrvGqcnnsuction = &_SrvGqcnnsuction{
		"grasp_msgs/gqcnnsuction",
		"754a261715d6019a39e12817fe1ce120",
		`# Plan a suction grasp from a registered color/depth image pair.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/CameraInfo camera_info
---
grasp_msgs/GQCNNGrasp grasp
`,
		MsgGqcnnsuctionRequest,
		MsgGqcnnsuctionResponse,
	}
)

type Gqcnnsuction struct {
	Request  GqcnnsuctionRequest
	Response GqcnnsuctionResponse
}

func (s *Gqcnnsuction) ReqMessage() msgs.Message { return &s.Request }
func (s *Gqcnnsuction) ResMessage() msgs.Message { return &s.Response }
