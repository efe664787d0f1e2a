package cli

import "testing"

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2024-06-15", false},
		{"leap day", "2024-02-29", false},
		{"wrong order", "15-06-2024", true},
		{"missing day", "2024-06", true},
		{"not a date", "soon", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"positive id", "42", 42, false},
		{"zero rejected", "0", 0, true},
		{"negative rejected", "-3", 0, true},
		{"not a number", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatMTBF(t *testing.T) {
	if got := formatMTBF(nil); got != "n/a" {
		t.Errorf("formatMTBF(nil) = %q, want %q", got, "n/a")
	}
	v := 45.0
	if got := formatMTBF(&v); got != "45.0 days" {
		t.Errorf("formatMTBF(45) = %q, want %q", got, "45.0 days")
	}
}
