package telemetry

import "strings"

// sensitiveKeys lists argument names whose values are guest contact details.
var sensitiveKeys = map[string]func(string) string{
	"guestEmail": MaskEmail,
	"email":      MaskEmail,
	"guestPhone": MaskPhone,
	"phone":      MaskPhone,
}

// RedactArgs returns a copy of args with guest contact values masked. The
// input map is never modified.
func RedactArgs(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		mask, sensitive := sensitiveKeys[k]
		if s, ok := v.(string); ok && sensitive {
			out[k] = mask(s)
			continue
		}
		out[k] = v
	}
	return out
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskPhone keeps the last two digits.
func MaskPhone(phone string) string {
	if len(phone) <= 2 {
		return "***"
	}
	return "***" + phone[len(phone)-2:]
}
