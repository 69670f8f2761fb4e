package errors

import (
	"strings"
	"unicode"
)

// MaxAngle is the exclusive upper bound for contact angles in degrees.
// A droplet at exactly 0 or 180 degrees degenerates to a flat film or a
// detached sphere and has no well-defined silhouette.
const MaxAngle = 180.0

// ValidateAngle validates a contact angle in degrees.
// The valid range is the open interval (0, 180); out-of-range angles are
// rejected rather than clamped so dataset geometry stays predictable.
func ValidateAngle(deg float64) error {
	if deg != deg { // NaN
		return New(ErrCodeInvalidParameter, "contact angle must be a number")
	}
	if deg <= 0 || deg >= MaxAngle {
		return New(ErrCodeInvalidParameter, "contact angle %.2f outside (0, %.0f) degrees", deg, MaxAngle)
	}
	return nil
}

// ValidateRadius validates a droplet base radius in pixels.
func ValidateRadius(r float64) error {
	if !(r > 0) {
		return New(ErrCodeInvalidParameter, "droplet radius must be positive, got %.2f", r)
	}
	return nil
}

// ValidateSigma validates a blur standard deviation.
// Zero disables blurring; negative values are invalid.
func ValidateSigma(sigma float64) error {
	if sigma < 0 {
		return New(ErrCodeInvalidParameter, "blur sigma must be non-negative, got %.2f", sigma)
	}
	return nil
}

// ValidateCanvas validates canvas dimensions.
func ValidateCanvas(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidParameter, "canvas dimensions must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidateBaselineFrac validates the vertical position of the contact
// surface as a fraction of canvas height.
func ValidateBaselineFrac(frac float64) error {
	if frac <= 0 || frac > 1 {
		return New(ErrCodeInvalidParameter, "baseline fraction %.3f outside (0, 1]", frac)
	}
	return nil
}

// ValidateOutputName validates an output file name for safety.
// It ensures the name is a simple basename without path components, so
// batch output cannot escape the requested output directory.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidParameter, "output name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidParameter, "output name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidParameter, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidParameter, "output name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidParameter, "output name cannot contain path traversal sequences (..)")
	}

	return nil
}
