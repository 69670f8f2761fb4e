package errors

import (
	"math"
	"testing"
)

func TestValidateAngle(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"shallow", 10, false},
		{"hydrophilic", 45, false},
		{"hemisphere", 90, false},
		{"hydrophobic", 120, false},
		{"near upper bound", 179.9, false},

		{"zero", 0, true},
		{"negative", -15, true},
		{"exactly 180", 180, true},
		{"above 180", 200, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAngle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAngle(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidParameter) {
				t.Errorf("ValidateAngle(%v) code = %v, want INVALID_PARAMETER", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateRadius(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"typical", 240, false},
		{"small", 1, false},

		{"zero", 0, true},
		{"negative", -5, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRadius(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRadius(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSigma(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero disables blur", 0, false},
		{"typical", 0.8, false},

		{"negative", -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSigma(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSigma(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"default canvas", 800, 900, false},
		{"square", 100, 100, false},

		{"zero width", 0, 900, true},
		{"zero height", 800, 0, true},
		{"negative", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCanvas(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCanvas(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBaselineFrac(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"default", 0.75, false},
		{"bottom edge", 1.0, false},

		{"zero", 0, true},
		{"negative", -0.5, true},
		{"above one", 1.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaselineFrac(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaselineFrac(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "droplet_1.png", false},
		{"valid with dash", "sample-42.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "../escape.png", true},
		{"forward slash", "dir/file.png", true},
		{"backslash", "dir\\file.png", true},
		{"null byte", "foo\x00bar.png", true},
		{"newline", "foo\nbar.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
