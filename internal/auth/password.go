package auth

import "unicode"

// MinSignupScore is the lowest PasswordStrength score accepted at sign-up.
const MinSignupScore = 2

// Strength is a password strength score from 0 to 4.
type Strength int

// Label returns the display label for the score.
func (s Strength) Label() string {
	switch {
	case s <= 1:
		return "weak"
	case s == 2:
		return "fair"
	case s == 3:
		return "good"
	default:
		return "strong"
	}
}

// Acceptable reports whether the score is high enough for sign-up.
func (s Strength) Acceptable() bool {
	return s >= MinSignupScore
}

// PasswordStrength scores pw. One point each for length >= 8, length >= 12,
// mixed case, a digit and a symbol, capped at 4.
func PasswordStrength(pw string) Strength {
	var lower, upper, digit, symbol bool
	n := 0
	for _, r := range pw {
		n++
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	score := 0
	if n >= 8 {
		score++
	}
	if n >= 12 {
		score++
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	return Strength(min(score, 4))
}
