package registration

import "unicode"

// PasswordStrength scores a candidate password from 0 to 4 for the strength
// meter shown alongside the password field. Points are awarded for length
// thresholds and character-class variety, capped at 4 bars.
// INVARIANT: Pure; no I/O
func PasswordStrength(password string) int {
	if password == "" {
		return 0
	}
	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if lower {
		score++
	}
	if upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	if score > 4 {
		score = 4
	}
	return score
}

// PasswordStrengthLabel returns the display label for a password's score.
func PasswordStrengthLabel(password string) string {
	if password == "" {
		return ""
	}
	if len(password) < 8 {
		return "Too short"
	}
	switch score := PasswordStrength(password); {
	case score == 0:
		return "Too Weak"
	case score == 1:
		return "Weak"
	case score == 2:
		return "Medium"
	default:
		return "Strong"
	}
}
