package export

import "testing"

func TestCurrencyFormatter(t *testing.T) {
	f := NewCurrencyFormatter("")

	tests := []struct {
		name   string
		input  int64
		expect string
	}{
		{"zero", 0, "₩0"},
		{"hundreds", 999, "₩999"},
		{"thousands", 1000, "₩1,000"},
		{"final price", 1234000, "₩1,234,000"},
		{"large", 261083000, "₩261,083,000"},
		{"negative", -1000, "-₩1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Format(tt.input); got != tt.expect {
				t.Errorf("Format(%d) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}

	if got := f.Number(1350000); got != "1,350,000" {
		t.Errorf("Number = %q, want 1,350,000", got)
	}
	if got := NewCurrencyFormatter("KRW ").Format(5000); got != "KRW 5,000" {
		t.Errorf("custom symbol = %q", got)
	}
}
