// Automatically generated from the service definition "grasp_msgs/gqcnnpj.srv"
package grasp_msgs

import (
	"github.com/binpick/graspros/msgs"
)

// Service type metadata
type _SrvGqcnnpj struct {
	name    string
	md5sum  string
	text    string
	reqType msgs.MessageType
	resType msgs.MessageType
}

func (t *_SrvGqcnnpj) Name() string                   { return t.name }
func (t *_SrvGqcnnpj) MD5Sum() string                 { return t.md5sum }
func (t *_SrvGqcnnpj) Text() string                   { return t.text }
func (t *_SrvGqcnnpj) RequestType() msgs.MessageType  { return t.reqType }
func (t *_SrvGqcnnpj) ResponseType() msgs.MessageType { return t.resType }
func (t *_SrvGqcnnpj) NewService() msgs.Service {
	return new(Gqcnnpj)
}

var (
	SrvGqcnnpj = &_SrvGqcnnpj{
		"grasp_msgs/gqcnnpj",
		"754a261715d6019a39e12817fe1ce120",
		`# Plan a parallel-jaw grasp from a registered color/depth image pair.
sensor_msgs/Image color_image
sensor_msgs/Image depth_image
sensor_msgs/CameraInfo camera_info
---
grasp_msgs/GQCNNGrasp grasp
`,
		MsgGqcnnpjRequest,
		MsgGqcnnpjResponse,
	}
)

type Gqcnnpj struct {
	Request  GqcnnpjRequest
	Response GqcnnpjResponse
}

func (s *Gqcnnpj) ReqMessage() msgs.Message { return &s.Request }
func (s *Gqcnnpj) ResMessage() msgs.Message { return &s.Response }
