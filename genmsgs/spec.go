// Package genmsgs parses ROS .msg and .srv schema files, computes their
// ROS-compatible MD5 sums and generates Go bindings against the
// graspros message runtime.
package genmsgs

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// HeaderType is the shorthand every schema package may use for the
	// standard header message.
	HeaderType     = "Header"
	HeaderFullName = "std_msgs/Header"

	TimeType     = "time"
	DurationType = "duration"
)

// PrimitiveTypes are the wire-level scalar types a constant may take.
var PrimitiveTypes = []string{
	"int8", "uint8",
	"int16", "uint16",
	"int32", "uint32",
	"int64", "uint64",
	"float32", "float64",
	"string", "bool",
	// deprecated aliases still found in older schemas
	"char", "byte",
}

// BuiltinTypes additionally admits the temporal types as field types.
var BuiltinTypes = append([]string{TimeType, DurationType}, PrimitiveTypes...)

func isPrimitiveType(name string) bool {
	for _, t := range PrimitiveTypes {
		if t == name {
			return true
		}
	}
	return false
}

func isBuiltinType(name string) bool {
	for _, t := range BuiltinTypes {
		if t == name {
			return true
		}
	}
	return false
}

// Constant is one `type NAME=value` line of a message definition.
type Constant struct {
	Type      string
	Name      string
	Value     interface{}
	ValueText string
}

func NewConstant(fieldType string, name string, value interface{}, valueText string) *Constant {
	return &Constant{fieldType, name, value, valueText}
}

func (c *Constant) String() string {
	return fmt.Sprintf("%s %s = %v", c.Type, c.Name, c.Value)
}

// Field is one `type name` line of a message definition.
type Field struct {
	Package   string
	Type      string
	Name      string
	IsBuiltin bool
	IsArray   bool
	ArrayLen  int
	GoName    string
	GoType    string
	ZeroValue string
}

func NewField(pkg string, fieldType string, name string, isArray bool, arrayLen int) *Field {
	return &Field{
		Package:   pkg,
		Type:      fieldType,
		Name:      name,
		IsBuiltin: isBuiltinType(fieldType),
		IsArray:   isArray,
		ArrayLen:  arrayLen,
		GoName:    ToGoName(name),
		GoType:    ToGoType(pkg, fieldType),
		ZeroValue: zeroValue(pkg, fieldType),
	}
}

// String renders the field the way the canonical MD5 text expects it.
func (f *Field) String() string {
	if f.IsArray && f.ArrayLen > -1 {
		return fmt.Sprintf("%s[%d] %s", f.Type, f.ArrayLen, f.Name)
	} else if f.IsArray {
		return fmt.Sprintf("%s[] %s", f.Type, f.Name)
	}
	return fmt.Sprintf("%s %s", f.Type, f.Name)
}

// MsgSpec is a parsed message definition.
type MsgSpec struct {
	Fields    []Field
	Constants []Constant
	Text      string
	MD5Sum    string
	FullName  string
	ShortName string
	GoName    string
	Package   string
}

func newMsgSpec(fields []Field, constants []Constant, text string, fullName string) *MsgSpec {
	pkg, short := splitType(fullName)
	return &MsgSpec{
		Fields:    fields,
		Constants: constants,
		Text:      text,
		FullName:  fullName,
		ShortName: short,
		GoName:    ToGoName(short),
		Package:   pkg,
	}
}

func (s *MsgSpec) String() string {
	lines := []string{fmt.Sprintf("msg %s {", s.FullName)}
	for _, c := range s.Constants {
		lines = append(lines, "\t"+c.String())
	}
	lines = append(lines, "")
	for _, f := range s.Fields {
		lines = append(lines, "\t"+f.String())
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// SrvSpec is a parsed service definition: two message specs split by `---`.
type SrvSpec struct {
	Package   string
	ShortName string
	GoName    string
	FullName  string
	Text      string
	MD5Sum    string
	Request   *MsgSpec
	Response  *MsgSpec
}

// ToGoType maps a schema field type to the Go type used in bindings.
func ToGoType(pkg string, typeName string) string {
	switch typeName {
	case "int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "string", "bool":
		return typeName
	case "char", "byte":
		return "uint8"
	case TimeType:
		return "msgs.Time"
	case DurationType:
		return "msgs.Duration"
	default:
		return pkg + "." + typeName
	}
}

func zeroValue(pkg string, typeName string) string {
	switch typeName {
	case "int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"char", "byte":
		return "0"
	case "float32", "float64":
		return "0.0"
	case "string":
		return `""`
	case "bool":
		return "false"
	case TimeType:
		return "msgs.Time{}"
	case DurationType:
		return "msgs.Duration{}"
	default:
		return pkg + "." + typeName + "{}"
	}
}

// ToGoName converts a snake_case schema identifier to an exported Go name.
func ToGoName(name string) string {
	var buffer []string
	for _, word := range strings.Split(name, "_") {
		if len(word) == 0 {
			continue
		}
		buffer = append(buffer, strings.ToUpper(word[:1]), word[1:])
	}
	return strings.Join(buffer, "")
}

func computeMD5Text(ctx *Context, spec *MsgSpec) (string, error) {
	var buf bytes.Buffer
	for _, c := range spec.Constants {
		fmt.Fprintf(&buf, "%s %s=%s\n", c.Type, c.Name, c.ValueText)
	}
	for _, f := range spec.Fields {
		if f.Package == "" {
			fmt.Fprintf(&buf, "%s\n", f.String())
		} else {
			subspec, err := ctx.LoadMsg(f.Package + "/" + f.Type)
			if err != nil {
				return "", err
			}
			// Nested messages contribute their MD5 in place of the
			// type name, without array decoration.
			fmt.Fprintf(&buf, "%s %s\n", subspec.MD5Sum, f.Name)
		}
	}
	return strings.Trim(buf.String(), "\n"), nil
}

func computeMsgMD5(ctx *Context, spec *MsgSpec) (string, error) {
	text, err := computeMD5Text(ctx, spec)
	if err != nil {
		return "", err
	}
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:]), nil
}

func computeSrvMD5(ctx *Context, spec *SrvSpec) (string, error) {
	reqText, err := computeMD5Text(ctx, spec.Request)
	if err != nil {
		return "", err
	}
	resText, err := computeMD5Text(ctx, spec.Response)
	if err != nil {
		return "", err
	}
	hash := md5.New()
	hash.Write([]byte(reqText))
	hash.Write([]byte(resText))
	return hex.EncodeToString(hash.Sum(nil)), nil
}
