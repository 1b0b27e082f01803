package genmsgs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeSchemaPackage lays out a schema package under root. Values of msgs
// and srvs are raw definition texts keyed by short name.
func writeSchemaPackage(t *testing.T, root string, pkg string, msgs map[string]string, srvs map[string]string) {
	t.Helper()
	pkgDir := filepath.Join(root, pkg)
	if err := os.MkdirAll(filepath.Join(pkgDir, "msg"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkgDir, "package.xml"), []byte("<package><name>"+pkg+"</name></package>\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for name, text := range msgs {
		if err := os.WriteFile(filepath.Join(pkgDir, "msg", name+".msg"), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if len(srvs) > 0 {
		if err := os.MkdirAll(filepath.Join(pkgDir, "srv"), 0755); err != nil {
			t.Fatal(err)
		}
		for name, text := range srvs {
			if err := os.WriteFile(filepath.Join(pkgDir, "srv", name+".srv"), []byte(text), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestConvertConstantValue(t *testing.T) {
	var tests = []struct {
		fieldType    string
		valueLiteral string
		expected     interface{}
		expectError  bool
	}{
		{"bool", "0", false, false},
		{"bool", "1", true, false},
		{"bool", "2", true, false},
		{"bool", "-2", true, true},
		{"bool", "True", true, false},
		{"bool", "False", false, false},
		{"bool", "None", false, false},
		{"float32", "2.72", float32(2.72), false},
		{"float64", "-3.14", float64(-3.14), false},
		{"int8", "-129", 0, true},
		{"int8", "-128", int8(-128), false},
		{"int8", "127", int8(127), false},
		{"int8", "128", 0, true},
		{"uint8", "-1", 0, true},
		{"uint8", "0", uint8(0), false},
		{"uint8", "255", uint8(255), false},
		{"uint8", "256", 0, true},
		{"int32", "-2147483648", int32(-2147483648), false},
		{"int32", "2147483648", 0, true},
		{"uint32", "4294967295", uint32(4294967295), false},
		{"uint64", "18446744073709551615", uint64(18446744073709551615), false},
		{"string", "Lorem Ipsum", "Lorem Ipsum", false},
	}

	for _, test := range tests {
		result, e := convertConstantValue(test.fieldType, test.valueLiteral)
		if test.expectError {
			if e == nil {
				t.Errorf("INPUT(%s : %s) | should fail but succeeded", test.valueLiteral, test.fieldType)
			}
		} else {
			if e != nil {
				t.Errorf("INPUT(%s : %s) | %s", test.valueLiteral, test.fieldType, e.Error())
			} else if result != test.expected {
				format := "INPUT(%s : %s) | Expected: [%v: %v], Actual: [%v : %v]"
				t.Errorf(format, test.valueLiteral, test.fieldType, test.expected, reflect.TypeOf(test.expected), result, reflect.TypeOf(result))
			}
		}
	}
}

func TestLoadFieldLine(t *testing.T) {
	var tests = []struct {
		line     string
		pkg      string
		fieldPkg string
		fieldTyp string
		name     string
		isArray  bool
		arrayLen int
	}{
		{"uint32 seq", "std_msgs", "", "uint32", "seq", false, 0},
		{"Header header", "sensor_msgs", "std_msgs", "Header", "header", false, 0},
		{"RegionOfInterest roi", "sensor_msgs", "sensor_msgs", "RegionOfInterest", "roi", false, 0},
		{"geometry_msgs/Pose pose", "grasp_msgs", "geometry_msgs", "Pose", "pose", false, 0},
		{"float64[2] center_px", "grasp_msgs", "", "float64", "center_px", true, 2},
		{"float64[] D", "sensor_msgs", "", "float64", "D", true, -1},
		{"uint8[] data # pixel rows", "sensor_msgs", "", "uint8", "data", true, -1},
		{"time stamp", "std_msgs", "", "time", "stamp", false, 0},
	}

	for _, test := range tests {
		field, err := loadFieldLine(test.line, test.pkg)
		if err != nil {
			t.Errorf("INPUT(%q) | %v", test.line, err)
			continue
		}
		if field.Package != test.fieldPkg || field.Type != test.fieldTyp ||
			field.Name != test.name || field.IsArray != test.isArray ||
			field.ArrayLen != test.arrayLen {
			t.Errorf("INPUT(%q) | got %+v", test.line, field)
		}
	}
}

func TestLoadConstantLine(t *testing.T) {
	c, err := loadConstantLine("uint8 PARALLEL_JAW=0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.Name != "PARALLEL_JAW" || c.Type != "uint8" || c.Value != uint8(0) {
		t.Errorf("got %+v", c)
	}

	c, err = loadConstantLine("string FRAME = base_link # trailing comment kept")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.Value != "base_link # trailing comment kept" {
		t.Errorf("string constants keep everything after '=': got %q", c.Value)
	}
}

func TestParseMessageFromString(t *testing.T) {
	root := t.TempDir()
	writeSchemaPackage(t, root, "foo", map[string]string{
		"Bar": "int32 v\n",
	}, nil)

	const text = `
# Comment
uint8 MODE_A = 0
uint8 MODE_B = 1
string S = Lorem Ipsum # comment is part of the value

Header header
bool b
float64 f64
string s
time t
duration d
string[] sva
string[42] sfa
std_msgs/Header other
Bar x
Bar[] xva
Bar[3] xfa
`
	ctx := NewContext([]string{"../schemas", root})
	spec, err := ctx.LoadMsgFromString(text, "foo/Foo")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(spec.Constants) != 3 {
		t.Errorf("expected 3 constants, got %d", len(spec.Constants))
	}
	if len(spec.Fields) != 12 {
		t.Errorf("expected 12 fields, got %d", len(spec.Fields))
	}
	// Header shorthand and relative names are package-qualified.
	if spec.Fields[0].Package != "std_msgs" || spec.Fields[0].Type != "Header" {
		t.Errorf("Header shorthand not resolved: %+v", spec.Fields[0])
	}
	if spec.Fields[9].Package != "foo" {
		t.Errorf("relative type not package-qualified: %+v", spec.Fields[9])
	}
}

func TestLoadMsgFromStringErrors(t *testing.T) {
	ctx := NewContext(nil)
	var bad = []string{
		"uint32",
		"uint32 3seq",
		"float64[-2] xs",
		"madeup99 x", // resolves to an unknown nested type
	}
	for _, text := range bad {
		if _, err := ctx.LoadMsgFromString(text, "foo/Bad"); err == nil {
			t.Errorf("INPUT(%q) | should fail but succeeded", text)
		}
	}
}

func TestToGoName(t *testing.T) {
	var tests = map[string]string{
		"seq":            "Seq",
		"frame_id":       "FrameId",
		"center_px":      "CenterPx",
		"gqcnnpj":        "Gqcnnpj",
		"gqcnnpjRequest": "GqcnnpjRequest",
		"D":              "D",
	}
	for in, want := range tests {
		if got := ToGoName(in); got != want {
			t.Errorf("ToGoName(%q) = %q, want %q", in, got, want)
		}
	}
}
