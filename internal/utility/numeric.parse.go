package utility

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParsedQuantity là kết quả của SafeParseQuantity: giá trị đã coerce và cờ
// cho biết giá trị gốc có parse được hay không.
type ParsedQuantity struct {
	Value  float64 // Giá trị numeric (0 nếu không parse được)
	Coerce bool    // true nếu giá trị gốc hợp lệ, false nếu phải fallback về 0
}

// SafeParseQuantity coerce một giá trị quantity bất kỳ (document cũ có thể lưu
// string) về số hữu hạn không âm. Không parse được → 0, không bao giờ lỗi:
// một record hỏng không được làm fail cả batch aggregation.
func SafeParseQuantity(v interface{}) ParsedQuantity {
	switch n := v.(type) {
	case nil:
		return ParsedQuantity{Value: 0, Coerce: false}
	case float64:
		return finiteNonNegative(n)
	case float32:
		return finiteNonNegative(float64(n))
	case int:
		return finiteNonNegative(float64(n))
	case int32:
		return finiteNonNegative(float64(n))
	case int64:
		return finiteNonNegative(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return ParsedQuantity{Value: 0, Coerce: false}
		}
		return finiteNonNegative(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return ParsedQuantity{Value: 0, Coerce: false}
		}
		return finiteNonNegative(f)
	default:
		return ParsedQuantity{Value: 0, Coerce: false}
	}
}

func finiteNonNegative(f float64) ParsedQuantity {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return ParsedQuantity{Value: 0, Coerce: false}
	}
	return ParsedQuantity{Value: f, Coerce: true}
}
