package validate

var innWeights = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}

func innCheckDigit(digits []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	return sum % 11 % 10
}

// IsINN validates a Russian tax id: 10 digits for legal entities, 12 for
// individuals, with the standard weighted check digits.
func IsINN(s string) bool {
	if len(s) != 10 && len(s) != 12 {
		return false
	}
	digits := make([]int, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	if len(s) == 10 {
		return digits[9] == innCheckDigit(digits, innWeights[2:])
	}
	return digits[10] == innCheckDigit(digits, innWeights[1:]) &&
		digits[11] == innCheckDigit(digits, innWeights)
}
