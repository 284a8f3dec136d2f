package validators

// IsPhoneValid accepts Brazilian numbers with 10 or 11 digits, ignoring
// the mask the form applies ("(19) 98906-7707").
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 11
}
