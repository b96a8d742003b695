package errors

import "unicode"

// maxUserIDLength caps identifier length to keep log lines and table output sane.
const maxUserIDLength = 256

// ValidateUserID validates a user identifier for the referral graph.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters (tabs, newlines, null bytes)
//   - Maximum length of 256 characters
//
// Identifiers are otherwise opaque: the graph only ever compares them for
// equality, so any printable string is acceptable.
func ValidateUserID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "user ID cannot be empty")
	}

	if len(id) > maxUserIDLength {
		return New(ErrCodeInvalidInput, "user ID too long (max %d characters)", maxUserIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "user ID contains invalid control characters")
		}
	}

	return nil
}

// ValidateProbability validates that p is a well-formed probability in [0, 1].
func ValidateProbability(p float64) error {
	if p != p { // NaN
		return New(ErrCodeInvalidProbability, "probability must not be NaN")
	}
	if p < 0.0 || p > 1.0 {
		return New(ErrCodeInvalidProbability, "probability %v out of range [0, 1]", p)
	}
	return nil
}
