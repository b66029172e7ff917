package services

import "strings"

const referralCodeLen = 6

// GenerateReferralCode derives a member's shareable code from their display
// name: letters only, upper-cased, first six, right-padded with 'X'. The
// derivation is deterministic; uniqueness against existing members is the
// caller's job (see confirm flow).
func GenerateReferralCode(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
			if b.Len() == referralCodeLen {
				break
			}
		}
	}

	code := strings.ToUpper(b.String())
	for len(code) < referralCodeLen {
		code += "X"
	}
	return code
}
