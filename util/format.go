package util

import "strconv"

// Formats a number into a string with _ between each three-group of
// digits, for numbers >= 10_000.
//
// Regarding the >= 10_000 exception:
// https://en.wikipedia.org/wiki/Decimal_separator#Exceptions_to_digit_grouping
func FormatNumber(number uint64) string {
	digits := strconv.FormatUint(number, 10)
	if number < 10_000 {
		return digits
	}

	grouped := make([]byte, 0, len(digits)+(len(digits)-1)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '_')
		}
		grouped = append(grouped, digits[i])
	}

	return string(grouped)
}
