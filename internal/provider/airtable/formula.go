package airtable

import (
	"fmt"
	"strings"
)

// Formula helpers for the table store's filter language. Values are always
// quoted and escaped before interpolation.

func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func eq(field, value string) string {
	return fmt.Sprintf("{%s} = %s", field, quote(value))
}

func eqFold(field, value string) string {
	return fmt.Sprintf("LOWER({%s}) = %s", field, quote(strings.ToLower(value)))
}

// contains is a case-insensitive substring test.
func contains(field, needle string) string {
	return fmt.Sprintf("SEARCH(%s, LOWER({%s}))", quote(strings.ToLower(needle)), field)
}

// containsExact is a case-sensitive substring test, used for phone digits.
func containsExact(field, needle string) string {
	return fmt.Sprintf("SEARCH(%s, {%s})", quote(needle), field)
}

func and(parts ...string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return "AND(" + strings.Join(parts, ", ") + ")"
}

func or(parts ...string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return "OR(" + strings.Join(parts, ", ") + ")"
}

// activeBookings matches bookings that still occupy their room.
func activeBookings() string {
	return or(eq(fieldStatus, "confirmed"), eq(fieldStatus, "checked-in"))
}
