package msgs

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJsonFloatMarshal(t *testing.T) {
	var tests = []struct {
		value    float64
		expected string
	}{
		{1.5, "1.5"},
		{0, "0"},
		{math.NaN(), `"nan"`},
		{math.Inf(1), `"+inf"`},
		{math.Inf(-1), `"-inf"`},
	}

	for _, test := range tests {
		out, err := json.Marshal(JsonFloat64{F: test.value})
		if err != nil {
			t.Errorf("marshal %v: %v", test.value, err)
		} else if string(out) != test.expected {
			t.Errorf("marshal %v: expected %s, got %s", test.value, test.expected, out)
		}

		out, err = json.Marshal(JsonFloat32{F: float32(test.value)})
		if err != nil {
			t.Errorf("marshal float32 %v: %v", test.value, err)
		} else if string(out) != test.expected {
			t.Errorf("marshal float32 %v: expected %s, got %s", test.value, test.expected, out)
		}
	}
}
