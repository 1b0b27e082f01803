package grasp_msgs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binpick/graspros/msgs"
	"github.com/binpick/graspros/msgs/geometry_msgs"
	"github.com/binpick/graspros/msgs/sensor_msgs"
	"github.com/binpick/graspros/msgs/std_msgs"
)

func sampleImage() sensor_msgs.Image {
	return sensor_msgs.Image{
		Header:   std_msgs.Header{Seq: 7, Stamp: msgs.NewTime(100, 250), FrameId: "camera"},
		Height:   2,
		Width:    2,
		Encoding: "mono8",
		Step:     2,
		Data:     []uint8{0, 64, 128, 255},
	}
}

func TestGQCNNGraspRoundTrip(t *testing.T) {
	original := GQCNNGrasp{
		Pose: geometry_msgs.Pose{
			Position:    geometry_msgs.Point{X: 0.1, Y: -0.2, Z: 0.75},
			Orientation: geometry_msgs.Quaternion{W: 1},
		},
		QValue:    0.92,
		Angle:     1.57,
		Depth:     0.71,
		CenterPx:  [2]float64{320, 240},
		GraspType: GQCNNGrasp_SUCTION,
		Thumbnail: sampleImage(),
	}

	var buf bytes.Buffer
	require.NoError(t, original.Serialize(&buf))

	var decoded GQCNNGrasp
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, original, decoded)
}

func TestMaskrcnnResponseRoundTrip(t *testing.T) {
	original := MaskrcnnResponse{
		Instances: []SegmentedObject{
			{
				ClassId:   3,
				ClassName: "bottle",
				Score:     0.87,
				Mask:      sampleImage(),
				Bbox:      sensor_msgs.RegionOfInterest{XOffset: 10, YOffset: 20, Height: 30, Width: 40, DoRectify: true},
			},
			{
				ClassId:   5,
				ClassName: "mug",
				Score:     0.55,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, original.Serialize(&buf))

	var decoded MaskrcnnResponse
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	require.Len(t, decoded.Instances, 2)
	assert.Equal(t, original.Instances[0], decoded.Instances[0])
	assert.Equal(t, "mug", decoded.Instances[1].ClassName)
}

func TestServiceTypes(t *testing.T) {
	services := []msgs.ServiceType{
		SrvGqcnnpj,
		SrvGqcnnsuction,
		SrvFcgqcnnpj,
		SrvFcgqcnnsuction,
		SrvMaskrcnn,
	}
	names := []string{
		"grasp_msgs/gqcnnpj",
		"grasp_msgs/gqcnnsuction",
		"grasp_msgs/fcgqcnnpj",
		"grasp_msgs/fcgqcnnsuction",
		"grasp_msgs/maskrcnn",
	}

	for i, st := range services {
		assert.Equal(t, names[i], st.Name())
		assert.NotEmpty(t, st.MD5Sum())
		assert.NotNil(t, st.RequestType().NewMessage())
		assert.NotNil(t, st.ResponseType().NewMessage())
	}

	// The pj/suction pairs share schema text modulo comments, so their
	// checksums coincide.
	assert.Equal(t, SrvGqcnnpj.MD5Sum(), SrvGqcnnsuction.MD5Sum())
	assert.Equal(t, SrvFcgqcnnpj.MD5Sum(), SrvFcgqcnnsuction.MD5Sum())
	assert.NotEqual(t, SrvGqcnnpj.MD5Sum(), SrvFcgqcnnpj.MD5Sum())
}

func TestServiceMessages(t *testing.T) {
	srv := SrvFcgqcnnpj.NewService().(*Fcgqcnnpj)
	srv.Request.Segmask = sampleImage()

	req := srv.ReqMessage().(*FcgqcnnpjRequest)
	assert.Equal(t, "mono8", req.Segmask.Encoding)

	res := srv.ResMessage().(*FcgqcnnpjResponse)
	res.Grasp.QValue = 0.5
	assert.Equal(t, 0.5, srv.Response.Grasp.QValue)
}
