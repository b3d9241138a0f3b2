// Package utility - Test SafeParseQuantity: coerce quantity hỗn tạp về số hữu
// hạn không âm, không bao giờ panic hay trả lỗi.
package utility

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSafeParseQuantity_Numeric(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", float64(12.5), 12.5},
		{"float32", float32(3), 3},
		{"int", int(7), 7},
		{"int32", int32(7), 7},
		{"int64", int64(7), 7},
		{"json.Number", json.Number("42.5"), 42.5},
		{"chuỗi số", "100", 100},
		{"chuỗi số có space", "  25 ", 25},
	}
	for _, tc := range cases {
		got := SafeParseQuantity(tc.in)
		if !got.Coerce {
			t.Errorf("%s: phải parse được, got Coerce=false", tc.name)
		}
		if got.Value != tc.want {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got.Value)
		}
	}
}

func TestSafeParseQuantity_Invalid(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
	}{
		{"nil", nil},
		{"chuỗi không phải số", "abc"},
		{"chuỗi rỗng", ""},
		{"số âm", float64(-5)},
		{"NaN", math.NaN()},
		{"Inf", math.Inf(1)},
		{"json.Number hỏng", json.Number("not-a-number")},
		{"kiểu lạ", map[string]interface{}{"x": 1}},
	}
	for _, tc := range cases {
		got := SafeParseQuantity(tc.in)
		if got.Coerce {
			t.Errorf("%s: không được coi là hợp lệ", tc.name)
		}
		if got.Value != 0 {
			t.Errorf("%s: giá trị hỏng phải coerce về 0, got %v", tc.name, got.Value)
		}
	}
}
