package util

import "testing"

func TestMoneyFormat(t *testing.T) {
	m := DefaultMoney()

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{65, "$65.00"},
		{6550, "$6,550.00"},
		{1234567.891, "$1,234,567.89"},
		{-200, "-$200.00"},
	}

	for _, tt := range tests {
		if got := m.Format(tt.amount); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestNewMoney(t *testing.T) {
	t.Run("empty locale uses default", func(t *testing.T) {
		m, err := NewMoney("€", "")
		if err != nil {
			t.Fatalf("NewMoney() error = %v", err)
		}
		if got := m.Format(1500); got != "€1,500.00" {
			t.Errorf("Format(1500) = %q, want %q", got, "€1,500.00")
		}
		if m.Symbol() != "€" {
			t.Errorf("Symbol() = %q, want €", m.Symbol())
		}
	})

	t.Run("invalid locale", func(t *testing.T) {
		if _, err := NewMoney("$", "not a locale!"); err == nil {
			t.Error("NewMoney() expected error for invalid locale")
		}
	})
}
