// Package paymentsvc - Test tính tiền checkout theo bảng giá.
package paymentsvc

import "testing"

func TestCheckoutAmount_UsesPriceTable(t *testing.T) {
	cases := []struct {
		wasteType string
		quantity  interface{}
		want      float64
	}{
		{"Plastic", float64(2), 60},
		{"Hazardous", float64(1), 60},
		{"Glass", float64(3), 45},
		{"Electronics", float64(2), 100},
	}
	for _, tc := range cases {
		got := CheckoutAmount(tc.wasteType, tc.quantity)
		if got != tc.want {
			t.Errorf("%s x %v: want %v, got %v", tc.wasteType, tc.quantity, tc.want, got)
		}
	}
}

func TestCheckoutAmount_ZeroOrBadQuantityCountsAsOne(t *testing.T) {
	if got := CheckoutAmount("Plastic", float64(0)); got != 30 {
		t.Errorf("quantity 0 phải tính 1 đơn vị, got %v", got)
	}
	if got := CheckoutAmount("Plastic", "abc"); got != 30 {
		t.Errorf("quantity hỏng phải tính 1 đơn vị, got %v", got)
	}
	if got := CheckoutAmount("Plastic", nil); got != 30 {
		t.Errorf("quantity nil phải tính 1 đơn vị, got %v", got)
	}
}

func TestCheckoutAmount_UnknownTypeIsFree(t *testing.T) {
	if got := CheckoutAmount("Styrofoam", float64(5)); got != 0 {
		t.Errorf("loại không có trong bảng giá phải tính 0, got %v", got)
	}
}

func TestCheckoutAmount_StringQuantity(t *testing.T) {
	// Document cũ có thể lưu quantity dạng chuỗi
	if got := CheckoutAmount("Metal", "4"); got != 80 {
		t.Errorf("quantity chuỗi \"4\" phải parse được, got %v", got)
	}
}
