package norsk

import "testing"

func TestValidOrganizationNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"923609016", true},
		{"923609017", false},
		{"123456789", false},
		{"92360901", false},
		{"9236090160", false},
		{"92360901a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidOrganizationNumber(tt.in); got != tt.want {
			t.Errorf("ValidOrganizationNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12345678903", true},
		{"1234.56.78903", true},
		{"12345678904", false},
		{"1234567890", false},
		{"123456789031", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidAccountNumber(tt.in); got != tt.want {
			t.Errorf("ValidAccountNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidPersonalNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"01018012371", true},
		{"01018012372", false},
		{"32018012371", false}, // day 32
		{"01138012371", false}, // month 13
		{"0101801237", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPersonalNumber(tt.in); got != tt.want {
			t.Errorf("ValidPersonalNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidVATNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"NO 923 609 016 MVA", true},
		{"NO923609016MVA", true},
		{"923609016", true},
		{"923609016 MVA", true},
		{"NO 923 609 017 MVA", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidVATNumber(tt.in); got != tt.want {
			t.Errorf("ValidVATNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidKID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2345676", true},
		{"79927398713", true},
		{"79927398714", false},
		{"2345677", false},
		{"1", false},   // too short
		{"abc", false}, // non-digits
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidKID(tt.in); got != tt.want {
			t.Errorf("ValidKID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"94898926", true},
		{"94 89 89 26", true},
		{"+47 94 89 89 26", true},
		{"004794898926", true},
		{"4794898926", true},
		{"9489892", false},
		{"948989261", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.in); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidPostalCode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0155", true},
		{"1407", true},
		{"0000", false},
		{"123", false},
		{"12345", false},
		{"12a4", false},
	}

	for _, tt := range tests {
		if got := ValidPostalCode(tt.in); got != tt.want {
			t.Errorf("ValidPostalCode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"19.11.2024", true},
		{"29.02.2024", true},  // leap year
		{"29.02.2023", false}, // not a leap year
		{"31.04.2024", false}, // April has 30 days
		{"00.01.2024", false},
		{"01.13.2024", false},
		{"2024-11-19", false},
		{"19/11/2024", false},
		{"1.1.2024", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.in); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
