package models

import "testing"

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		quantity int
		want     StockStatus
	}{
		{0, OutOfStock},
		{1, LowStock},
		{4, LowStock},
		{5, InStock},
		{100, InStock},
		{-1, OutOfStock},
	}
	for _, tt := range tests {
		if got := StockStatusFor(tt.quantity); got != tt.want {
			t.Errorf("StockStatusFor(%d) = %q, want %q", tt.quantity, got, tt.want)
		}
	}
}
