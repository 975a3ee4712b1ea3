package validators

import "strings"

// IsPhoneValid aceita telefones com pontuação comum ((85) 99999-9999,
// +55 85 9999-9999) exigindo entre 8 e 15 dígitos.
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+' || r == '.':
			// pontuação permitida
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}
