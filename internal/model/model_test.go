package model

import "testing"

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		if !IsValidOrderStatus(status) {
			t.Errorf("IsValidOrderStatus(%q) = false, want true", status)
		}
	}

	invalid := []string{"", "shipped", "PENDING", "pending ", "done"}
	for _, status := range invalid {
		if IsValidOrderStatus(status) {
			t.Errorf("IsValidOrderStatus(%q) = true, want false", status)
		}
	}
}
