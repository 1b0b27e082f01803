package msgs

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"github.com/binpick/graspros/genmsgs"
)

// SchemaPathEnv names the environment variable holding a colon-separated
// list of directories to scan for schema packages when no explicit path has
// been set.
const SchemaPathEnv = "GRASPROS_SCHEMA_PATH"

var (
	contextMu   sync.Mutex
	context     *genmsgs.Context
	schemaPaths []string
)

// SetSchemaPath overrides the schema search path used by the dynamic types.
// It resets the shared schema context, so definitions are re-discovered on
// the next lookup.
func SetSchemaPath(paths ...string) {
	contextMu.Lock()
	schemaPaths = paths
	context = nil
	contextMu.Unlock()
}

func schemaContext() *genmsgs.Context {
	contextMu.Lock()
	defer contextMu.Unlock()
	if context == nil {
		paths := schemaPaths
		if len(paths) == 0 {
			paths = strings.Split(os.Getenv(SchemaPathEnv), ":")
		}
		context = genmsgs.NewContext(paths)
	}
	return context
}

// DynamicMessageType is a message schema resolved at runtime from the
// schema tree. It implements MessageType, so callers that do not link the
// generated bindings can still construct and exchange messages.
type DynamicMessageType struct {
	spec *genmsgs.MsgSpec
}

// DynamicMessage is one instance of a runtime-resolved message. Field
// values live in a map keyed by the Go field name.
type DynamicMessage struct {
	dynamicType *DynamicMessageType
	data        map[string]interface{}
}

// NewDynamicMessageType resolves typeName (e.g. "grasp_msgs/GQCNNGrasp")
// from the schema tree.
func NewDynamicMessageType(typeName string) (*DynamicMessageType, error) {
	spec, err := schemaContext().LoadMsg(typeName)
	if err != nil {
		return nil, err
	}
	return &DynamicMessageType{spec: spec}, nil
}

func (t *DynamicMessageType) Name() string {
	return t.spec.FullName
}

func (t *DynamicMessageType) Text() string {
	return t.spec.Text
}

func (t *DynamicMessageType) MD5Sum() string {
	return t.spec.MD5Sum
}

// NewMessage creates a zero-valued instance of the type.
func (t *DynamicMessageType) NewMessage() Message {
	if t.spec == nil {
		return nil
	}
	d := &DynamicMessage{dynamicType: t, data: make(map[string]interface{})}
	for i := range t.spec.Fields {
		field := &t.spec.Fields[i]
		if value, err := zeroFieldValue(field); err == nil {
			d.data[field.GoName] = value
		}
	}
	return d
}

// zeroFieldValue builds the zero value for a field, constructing nested
// messages (and every element of a fixed-length nested array) so the result
// is immediately serializable. The nested spec is already in the registry
// from the MD5 computation.
func zeroFieldValue(field *genmsgs.Field) (interface{}, error) {
	value := zeroValueFor(field)
	if value == nil {
		nested, err := NewDynamicMessageType(field.Package + "/" + field.Type)
		if err != nil {
			return nil, err
		}
		return nested.NewMessage(), nil
	}
	if elems, ok := value.([]Message); ok && len(elems) > 0 {
		nested, err := NewDynamicMessageType(field.Package + "/" + field.Type)
		if err != nil {
			return nil, err
		}
		for i := range elems {
			elems[i] = nested.NewMessage()
		}
	}
	return value, nil
}

func (m *DynamicMessage) Type() MessageType {
	return m.dynamicType
}

// Data exposes the field values keyed by Go field name.
func (m *DynamicMessage) Data() map[string]interface{} {
	return m.data
}

func zeroValueFor(field *genmsgs.Field) interface{} {
	if field.IsArray {
		n := field.ArrayLen
		if n < 0 {
			n = 0
		}
		switch field.Type {
		case "bool":
			return make([]bool, n)
		case "int8":
			return make([]int8, n)
		case "int16":
			return make([]int16, n)
		case "int32":
			return make([]int32, n)
		case "int64":
			return make([]int64, n)
		case "uint8", "char", "byte":
			return make([]uint8, n)
		case "uint16":
			return make([]uint16, n)
		case "uint32":
			return make([]uint32, n)
		case "uint64":
			return make([]uint64, n)
		case "float32":
			return make([]float32, n)
		case "float64":
			return make([]float64, n)
		case "string":
			return make([]string, n)
		case genmsgs.TimeType:
			return make([]Time, n)
		case genmsgs.DurationType:
			return make([]Duration, n)
		default:
			return make([]Message, n)
		}
	}
	switch field.Type {
	case "bool":
		return false
	case "int8":
		return int8(0)
	case "int16":
		return int16(0)
	case "int32":
		return int32(0)
	case "int64":
		return int64(0)
	case "uint8", "char", "byte":
		return uint8(0)
	case "uint16":
		return uint16(0)
	case "uint32":
		return uint32(0)
	case "uint64":
		return uint64(0)
	case "float32":
		return float32(0)
	case "float64":
		return float64(0)
	case "string":
		return ""
	case genmsgs.TimeType:
		return Time{}
	case genmsgs.DurationType:
		return Duration{}
	default:
		return nil
	}
}

// Serialize writes the message in wire order. Missing map entries serialize
// as zero values; fixed arrays must carry exactly their declared length.
func (m *DynamicMessage) Serialize(buf *bytes.Buffer) error {
	for i := range m.dynamicType.spec.Fields {
		field := &m.dynamicType.spec.Fields[i]
		value, ok := m.data[field.GoName]
		if !ok || value == nil {
			var err error
			if value, err = zeroFieldValue(field); err != nil {
				return errors.Wrapf(err, "field %s of %s", field.Name, m.dynamicType.spec.FullName)
			}
		}
		if err := serializeValue(buf, field, value); err != nil {
			return errors.Wrapf(err, "field %s of %s", field.Name, m.dynamicType.spec.FullName)
		}
	}
	return nil
}

func (m *DynamicMessage) newNestedType(field *genmsgs.Field) (*DynamicMessageType, error) {
	return NewDynamicMessageType(field.Package + "/" + field.Type)
}

func serializeValue(buf *bytes.Buffer, field *genmsgs.Field, value interface{}) error {
	if field.IsArray {
		length, err := arrayLength(value)
		if err != nil {
			return err
		}
		if field.ArrayLen < 0 {
			if err := binary.Write(buf, binary.LittleEndian, uint32(length)); err != nil {
				return err
			}
		} else if length != field.ArrayLen {
			return errors.Errorf("fixed array needs %d elements, got %d", field.ArrayLen, length)
		}
		return serializeArrayElements(buf, field, value)
	}
	return serializeScalar(buf, field, value)
}

func arrayLength(value interface{}) (int, error) {
	switch v := value.(type) {
	case []bool:
		return len(v), nil
	case []int8:
		return len(v), nil
	case []int16:
		return len(v), nil
	case []int32:
		return len(v), nil
	case []int64:
		return len(v), nil
	case []uint8:
		return len(v), nil
	case []uint16:
		return len(v), nil
	case []uint32:
		return len(v), nil
	case []uint64:
		return len(v), nil
	case []float32:
		return len(v), nil
	case []float64:
		return len(v), nil
	case []string:
		return len(v), nil
	case []Time:
		return len(v), nil
	case []Duration:
		return len(v), nil
	case []Message:
		return len(v), nil
	default:
		return 0, errors.Errorf("unsupported array value %T", value)
	}
}

func serializeArrayElements(buf *bytes.Buffer, field *genmsgs.Field, value interface{}) error {
	switch v := value.(type) {
	case []string:
		for _, e := range v {
			if err := writeString(buf, e); err != nil {
				return err
			}
		}
	case []Time:
		for _, e := range v {
			if err := writeTemporal(buf, e.Sec, e.NSec); err != nil {
				return err
			}
		}
	case []Duration:
		for _, e := range v {
			if err := writeTemporal(buf, e.Sec, e.NSec); err != nil {
				return err
			}
		}
	case []Message:
		for _, e := range v {
			if err := e.Serialize(buf); err != nil {
				return err
			}
		}
	default:
		// Fixed-size scalar slices go through encoding/binary directly.
		return binary.Write(buf, binary.LittleEndian, value)
	}
	return nil
}

func serializeScalar(buf *bytes.Buffer, field *genmsgs.Field, value interface{}) error {
	switch v := value.(type) {
	case string:
		return writeString(buf, v)
	case Time:
		return writeTemporal(buf, v.Sec, v.NSec)
	case Duration:
		return writeTemporal(buf, v.Sec, v.NSec)
	case Message:
		return v.Serialize(buf)
	default:
		return binary.Write(buf, binary.LittleEndian, value)
	}
}

func writeString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	return err
}

func writeTemporal(buf *bytes.Buffer, sec uint32, nsec uint32) error {
	if err := binary.Write(buf, binary.LittleEndian, sec); err != nil {
		return err
	}
	return binary.Write(buf, binary.LittleEndian, nsec)
}

// Deserialize reads the message in wire order, replacing all field values.
func (m *DynamicMessage) Deserialize(buf *bytes.Reader) error {
	m.data = make(map[string]interface{})
	for i := range m.dynamicType.spec.Fields {
		field := &m.dynamicType.spec.Fields[i]
		value, err := deserializeValue(buf, field, m)
		if err != nil {
			return errors.Wrapf(err, "field %s of %s", field.Name, m.dynamicType.spec.FullName)
		}
		m.data[field.GoName] = value
	}
	return nil
}

func deserializeValue(buf *bytes.Reader, field *genmsgs.Field, m *DynamicMessage) (interface{}, error) {
	if field.IsArray {
		length := field.ArrayLen
		if length < 0 {
			var size uint32
			if err := binary.Read(buf, binary.LittleEndian, &size); err != nil {
				return nil, err
			}
			length = int(size)
		}
		return deserializeArray(buf, field, m, length)
	}
	return deserializeScalar(buf, field, m)
}

func deserializeArray(buf *bytes.Reader, field *genmsgs.Field, m *DynamicMessage, length int) (interface{}, error) {
	switch field.Type {
	case "string":
		out := make([]string, length)
		for i := range out {
			s, err := readString(buf)
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	case genmsgs.TimeType:
		out := make([]Time, length)
		for i := range out {
			if err := readTemporal(buf, &out[i].Sec, &out[i].NSec); err != nil {
				return nil, err
			}
		}
		return out, nil
	case genmsgs.DurationType:
		out := make([]Duration, length)
		for i := range out {
			if err := readTemporal(buf, &out[i].Sec, &out[i].NSec); err != nil {
				return nil, err
			}
		}
		return out, nil
	case "bool":
		out := make([]bool, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "int8":
		out := make([]int8, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "int16":
		out := make([]int16, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "int32":
		out := make([]int32, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "int64":
		out := make([]int64, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "uint8", "char", "byte":
		out := make([]uint8, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "uint16":
		out := make([]uint16, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "uint32":
		out := make([]uint32, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "uint64":
		out := make([]uint64, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "float32":
		out := make([]float32, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	case "float64":
		out := make([]float64, length)
		return out, binary.Read(buf, binary.LittleEndian, out)
	default:
		nestedType, err := m.newNestedType(field)
		if err != nil {
			return nil, err
		}
		out := make([]Message, length)
		for i := range out {
			msg := nestedType.NewMessage()
			if err := msg.Deserialize(buf); err != nil {
				return nil, err
			}
			out[i] = msg
		}
		return out, nil
	}
}

func deserializeScalar(buf *bytes.Reader, field *genmsgs.Field, m *DynamicMessage) (interface{}, error) {
	switch field.Type {
	case "string":
		return readString(buf)
	case genmsgs.TimeType:
		var t Time
		return t, readTemporal(buf, &t.Sec, &t.NSec)
	case genmsgs.DurationType:
		var d Duration
		return d, readTemporal(buf, &d.Sec, &d.NSec)
	case "bool":
		var v bool
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "int8":
		var v int8
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "int16":
		var v int16
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "int32":
		var v int32
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "int64":
		var v int64
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "uint8", "char", "byte":
		var v uint8
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "uint16":
		var v uint16
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "uint32":
		var v uint32
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "uint64":
		var v uint64
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "float32":
		var v float32
		return v, binary.Read(buf, binary.LittleEndian, &v)
	case "float64":
		var v float64
		return v, binary.Read(buf, binary.LittleEndian, &v)
	default:
		nestedType, err := m.newNestedType(field)
		if err != nil {
			return nil, err
		}
		msg := nestedType.NewMessage()
		return msg, msg.Deserialize(buf)
	}
}

func readString(buf *bytes.Reader) (string, error) {
	var size uint32
	if err := binary.Read(buf, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	data := make([]byte, int(size))
	if err := binary.Read(buf, binary.LittleEndian, data); err != nil {
		return "", err
	}
	return string(data), nil
}

func readTemporal(buf *bytes.Reader, sec *uint32, nsec *uint32) error {
	if err := binary.Read(buf, binary.LittleEndian, sec); err != nil {
		return err
	}
	return binary.Read(buf, binary.LittleEndian, nsec)
}

// MarshalJSON renders the message as a JSON object keyed by schema field
// name. Floats wrap in JsonFloat so NaN and infinities survive.
func (m *DynamicMessage) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.dynamicType.spec.Fields))
	for i := range m.dynamicType.spec.Fields {
		field := &m.dynamicType.spec.Fields[i]
		value, ok := m.data[field.GoName]
		if !ok {
			continue
		}
		out[field.Name] = jsonValue(value)
	}
	return json.Marshal(out)
}

func jsonValue(value interface{}) interface{} {
	switch v := value.(type) {
	case float32:
		return JsonFloat32{F: v}
	case float64:
		return JsonFloat64{F: v}
	case []float32:
		wrapped := make([]JsonFloat32, len(v))
		for i, f := range v {
			wrapped[i] = JsonFloat32{F: f}
		}
		return wrapped
	case []float64:
		wrapped := make([]JsonFloat64, len(v))
		for i, f := range v {
			wrapped[i] = JsonFloat64{F: f}
		}
		return wrapped
	case []uint8:
		// encoding/json would base64 a byte slice; emit numbers instead so
		// UnmarshalJSON can read its own output.
		nums := make([]uint16, len(v))
		for i, b := range v {
			nums[i] = uint16(b)
		}
		return nums
	default:
		return value
	}
}

// UnmarshalJSON fills the message from a JSON object keyed by schema field
// name. Unknown keys are rejected; absent fields keep their current value.
func (m *DynamicMessage) UnmarshalJSON(data []byte) error {
	if m.data == nil {
		m.data = make(map[string]interface{})
	}
	fieldsByName := make(map[string]*genmsgs.Field, len(m.dynamicType.spec.Fields))
	for i := range m.dynamicType.spec.Fields {
		field := &m.dynamicType.spec.Fields[i]
		fieldsByName[field.Name] = field
	}

	return jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		field, ok := fieldsByName[string(key)]
		if !ok {
			return errors.Errorf("unknown field %s in %s", string(key), m.dynamicType.spec.FullName)
		}
		parsed, err := m.parseJSONField(field, value, dataType)
		if err != nil {
			return errors.Wrapf(err, "field %s", field.Name)
		}
		m.data[field.GoName] = parsed
		return nil
	})
}

func (m *DynamicMessage) parseJSONField(field *genmsgs.Field, value []byte, dataType jsonparser.ValueType) (interface{}, error) {
	if field.IsArray {
		return m.parseJSONArray(field, value, dataType)
	}
	return m.parseJSONScalar(field, value, dataType)
}

func (m *DynamicMessage) parseJSONArray(field *genmsgs.Field, value []byte, dataType jsonparser.ValueType) (interface{}, error) {
	if dataType != jsonparser.Array {
		return nil, errors.Errorf("expected JSON array, got %s", dataType)
	}
	result := zeroValueFor(&genmsgs.Field{
		Package: field.Package, Type: field.Type,
		IsArray: true, ArrayLen: -1,
	})
	var innerErr error
	_, err := jsonparser.ArrayEach(value, func(element []byte, elementType jsonparser.ValueType, offset int, err error) {
		if innerErr != nil || err != nil {
			if innerErr == nil {
				innerErr = err
			}
			return
		}
		parsed, err := m.parseJSONScalar(field, element, elementType)
		if err != nil {
			innerErr = err
			return
		}
		result = appendDynamic(result, parsed)
	})
	if err != nil {
		return nil, err
	}
	if innerErr != nil {
		return nil, innerErr
	}
	return result, nil
}

func appendDynamic(slice interface{}, element interface{}) interface{} {
	switch s := slice.(type) {
	case []bool:
		return append(s, element.(bool))
	case []int8:
		return append(s, element.(int8))
	case []int16:
		return append(s, element.(int16))
	case []int32:
		return append(s, element.(int32))
	case []int64:
		return append(s, element.(int64))
	case []uint8:
		return append(s, element.(uint8))
	case []uint16:
		return append(s, element.(uint16))
	case []uint32:
		return append(s, element.(uint32))
	case []uint64:
		return append(s, element.(uint64))
	case []float32:
		return append(s, element.(float32))
	case []float64:
		return append(s, element.(float64))
	case []string:
		return append(s, element.(string))
	case []Time:
		return append(s, element.(Time))
	case []Duration:
		return append(s, element.(Duration))
	case []Message:
		return append(s, element.(Message))
	default:
		return slice
	}
}

func (m *DynamicMessage) parseJSONScalar(field *genmsgs.Field, value []byte, dataType jsonparser.ValueType) (interface{}, error) {
	switch field.Type {
	case "bool":
		return jsonparser.ParseBoolean(value)
	case "int8":
		v, err := jsonparser.ParseInt(value)
		return int8(v), err
	case "int16":
		v, err := jsonparser.ParseInt(value)
		return int16(v), err
	case "int32":
		v, err := jsonparser.ParseInt(value)
		return int32(v), err
	case "int64":
		return jsonparser.ParseInt(value)
	case "uint8", "char", "byte":
		v, err := jsonparser.ParseInt(value)
		return uint8(v), err
	case "uint16":
		v, err := jsonparser.ParseInt(value)
		return uint16(v), err
	case "uint32":
		v, err := jsonparser.ParseInt(value)
		return uint32(v), err
	case "uint64":
		v, err := jsonparser.ParseInt(value)
		return uint64(v), err
	case "float32":
		v, err := parseJSONFloat(value, dataType)
		return float32(v), err
	case "float64":
		return parseJSONFloat(value, dataType)
	case "string":
		return jsonparser.ParseString(value)
	case genmsgs.TimeType:
		var t Time
		err := parseJSONTemporal(value, &t.Sec, &t.NSec)
		return t, err
	case genmsgs.DurationType:
		var d Duration
		err := parseJSONTemporal(value, &d.Sec, &d.NSec)
		return d, err
	default:
		nestedType, err := m.newNestedType(field)
		if err != nil {
			return nil, err
		}
		nested := nestedType.NewMessage().(*DynamicMessage)
		if err := nested.UnmarshalJSON(value); err != nil {
			return nil, err
		}
		return nested, nil
	}
}

// parseJSONFloat accepts plain numbers plus the "nan"/"+inf"/"-inf"
// strings JsonFloat emits.
func parseJSONFloat(value []byte, dataType jsonparser.ValueType) (float64, error) {
	if dataType == jsonparser.String {
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return 0, err
		}
		switch s {
		case "nan":
			return math.NaN(), nil
		case "+inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		default:
			return 0, errors.Errorf("invalid float literal %q", s)
		}
	}
	return jsonparser.ParseFloat(value)
}

func parseJSONTemporal(value []byte, sec *uint32, nsec *uint32) error {
	s, err := jsonparser.GetInt(value, "Sec")
	if err != nil {
		return err
	}
	n, err := jsonparser.GetInt(value, "NSec")
	if err != nil {
		return err
	}
	*sec = uint32(s)
	*nsec = uint32(n)
	return nil
}

func (m *DynamicMessage) String() string {
	out, err := m.MarshalJSON()
	if err != nil {
		return m.dynamicType.spec.FullName
	}
	return string(out)
}
