package msgs

import (
	"encoding/json"
	"math"
	"strconv"
)

// JsonFloat32 wraps a float32 so that NaN and infinities survive a trip
// through JSON, which has no encoding for them.
type JsonFloat32 struct {
	F float32
}

// JsonFloat64 is the float64 version of JsonFloat32.
type JsonFloat64 struct {
	F float64
}

func (f JsonFloat32) String() string {
	return strconv.FormatFloat(float64(f.F), 'f', 5, 32)
}

func (f JsonFloat32) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f.F)) {
		return json.Marshal("nan")
	} else if math.IsInf(float64(f.F), 1) {
		return json.Marshal("+inf")
	} else if math.IsInf(float64(f.F), -1) {
		return json.Marshal("-inf")
	}
	return json.Marshal(f.F)
}

func (f JsonFloat64) String() string {
	return strconv.FormatFloat(f.F, 'f', 5, 64)
}

func (f JsonFloat64) MarshalJSON() ([]byte, error) {
	if math.IsNaN(f.F) {
		return json.Marshal("nan")
	} else if math.IsInf(f.F, 1) {
		return json.Marshal("+inf")
	} else if math.IsInf(f.F, -1) {
		return json.Marshal("-inf")
	}
	return json.Marshal(f.F)
}
