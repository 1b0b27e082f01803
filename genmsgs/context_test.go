package genmsgs

import (
	"sort"
	"testing"
)

func newSchemaContext(t *testing.T) *Context {
	t.Helper()
	return NewContext([]string{"../schemas"})
}

func TestDiscovery(t *testing.T) {
	ctx := newSchemaContext(t)

	wantMsgs := []string{
		"geometry_msgs/Point",
		"geometry_msgs/Pose",
		"geometry_msgs/PoseStamped",
		"geometry_msgs/Quaternion",
		"grasp_msgs/GQCNNGrasp",
		"grasp_msgs/SegmentedObject",
		"sensor_msgs/CameraInfo",
		"sensor_msgs/Image",
		"sensor_msgs/RegionOfInterest",
		"std_msgs/Header",
	}
	got := ctx.MsgNames()
	sort.Strings(got)
	if len(got) != len(wantMsgs) {
		t.Fatalf("expected %d messages, got %v", len(wantMsgs), got)
	}
	for i, name := range wantMsgs {
		if got[i] != name {
			t.Errorf("message %d: expected %s, got %s", i, name, got[i])
		}
	}

	wantSrvs := []string{
		"grasp_msgs/fcgqcnnpj",
		"grasp_msgs/fcgqcnnsuction",
		"grasp_msgs/gqcnnpj",
		"grasp_msgs/gqcnnsuction",
		"grasp_msgs/maskrcnn",
	}
	gotSrvs := ctx.SrvNames()
	sort.Strings(gotSrvs)
	if len(gotSrvs) != len(wantSrvs) {
		t.Fatalf("expected exactly five services, got %v", gotSrvs)
	}
	for i, name := range wantSrvs {
		if gotSrvs[i] != name {
			t.Errorf("service %d: expected %s, got %s", i, name, gotSrvs[i])
		}
	}
}

func TestMD5_messages(t *testing.T) {
	// Golden sums; the std_msgs, sensor_msgs and geometry_msgs values match
	// the upstream ROS definitions.
	var golden = map[string]string{
		"std_msgs/Header":              "2176decaecbce78abc3b96ef049fabed",
		"geometry_msgs/Point":          "4a842b65f413084dc2b10fb484ea7f17",
		"geometry_msgs/Quaternion":     "a779879fadf0160734f906b8c19c7004",
		"geometry_msgs/Pose":           "e45d45a5a1ce597b249e23fb30fc871f",
		"geometry_msgs/PoseStamped":    "d3812c3cbc69362b77dc0b19b345f8f5",
		"sensor_msgs/RegionOfInterest": "bdb633039d588fcccb441a4d43ccfe09",
		"sensor_msgs/Image":            "060021388200f6f0f447d0fcd9c64743",
		"sensor_msgs/CameraInfo":       "c9a58c1b0b154e0e6da7578cb991d214",
		"grasp_msgs/GQCNNGrasp":        "9267eecd86826400c7edd11c94269779",
		"grasp_msgs/SegmentedObject":   "06a4241b8980a76fd7543925f9110a37",
	}

	ctx := newSchemaContext(t)
	for fullname, md5 := range golden {
		_, shortName, _ := packageResourceName(fullname)
		t.Run(shortName, func(t *testing.T) {
			spec, err := ctx.LoadMsg(fullname)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}
			if spec.MD5Sum != md5 {
				t.Errorf("expected %s, got %s", md5, spec.MD5Sum)
			}
		})
	}
}

func TestMD5_services(t *testing.T) {
	var golden = map[string]string{
		"grasp_msgs/gqcnnpj":        "754a261715d6019a39e12817fe1ce120",
		"grasp_msgs/gqcnnsuction":   "754a261715d6019a39e12817fe1ce120",
		"grasp_msgs/fcgqcnnpj":      "72bec3422d5dbac69a3460442bc5463f",
		"grasp_msgs/fcgqcnnsuction": "72bec3422d5dbac69a3460442bc5463f",
		"grasp_msgs/maskrcnn":       "e4f26c05bb26aab6da3569cc028cb68a",
	}

	ctx := newSchemaContext(t)
	for fullname, md5 := range golden {
		_, shortName, _ := packageResourceName(fullname)
		t.Run(shortName, func(t *testing.T) {
			spec, err := ctx.LoadSrv(fullname)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}
			if spec.MD5Sum != md5 {
				t.Errorf("expected %s, got %s", md5, spec.MD5Sum)
			}
		})
	}
}

func TestServiceHalves(t *testing.T) {
	ctx := newSchemaContext(t)

	spec, err := ctx.LoadSrv("grasp_msgs/fcgqcnnpj")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Request.FullName != "grasp_msgs/fcgqcnnpjRequest" {
		t.Errorf("request name: %s", spec.Request.FullName)
	}
	if spec.Response.FullName != "grasp_msgs/fcgqcnnpjResponse" {
		t.Errorf("response name: %s", spec.Response.FullName)
	}
	if len(spec.Request.Fields) != 4 {
		t.Errorf("fc request should carry the segmask: %v", spec.Request.Fields)
	}
	if spec.Request.MD5Sum != "7db86c02dd3ce9e0cc0f5d87054b1ebe" {
		t.Errorf("request md5: %s", spec.Request.MD5Sum)
	}
	if spec.Response.MD5Sum != "b8e97455d988c689e3de9fe1fff5dcef" {
		t.Errorf("response md5: %s", spec.Response.MD5Sum)
	}

	mask, err := ctx.LoadSrv("grasp_msgs/maskrcnn")
	if err != nil {
		t.Fatal(err)
	}
	res := mask.Response
	if len(res.Fields) != 1 || res.Fields[0].Type != "SegmentedObject" || !res.Fields[0].IsArray {
		t.Errorf("maskrcnn response: %+v", res.Fields)
	}
}

func TestLoadSrvDelimiterInComment(t *testing.T) {
	ctx := newSchemaContext(t)

	// Only a line consisting of the delimiter splits; '---' inside a
	// comment stays in the request half.
	text := "# request --- response split is the bare line below\n" +
		"sensor_msgs/Image color_image\n" +
		"---\n" +
		"grasp_msgs/GQCNNGrasp grasp\n"
	spec, err := ctx.LoadSrvFromString(text, "grasp_msgs/crop")
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Request.Fields) != 1 || spec.Request.Fields[0].Name != "color_image" {
		t.Errorf("request fields: %+v", spec.Request.Fields)
	}
	if len(spec.Response.Fields) != 1 || spec.Response.Fields[0].Name != "grasp" {
		t.Errorf("response fields: %+v", spec.Response.Fields)
	}

	if _, err := ctx.LoadSrvFromString("uint32 a\n", "grasp_msgs/nodelim"); err == nil {
		t.Error("expected an error for a definition without a delimiter")
	}
}

func TestRegistryCaching(t *testing.T) {
	ctx := newSchemaContext(t)
	first, err := ctx.LoadMsg("std_msgs/Header")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ctx.LoadMsg("std_msgs/Header")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the registry to return the cached spec")
	}
}

func TestLoadMsgUnknown(t *testing.T) {
	ctx := newSchemaContext(t)
	if _, err := ctx.LoadMsg("grasp_msgs/DoesNotExist"); err == nil {
		t.Error("expected an error for an unknown message")
	}
}
