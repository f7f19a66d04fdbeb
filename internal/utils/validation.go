package utils

import (
	"fmt"
	"regexp"
	"time"
)

var (
	dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// Hours are unpadded, so "09:00" is a different map key than "9:00"
	// and must be rejected, not stored alongside it.
	timeKeyPattern = regexp.MustCompile(`^(\d|1\d|2[0-3]):(00|15|30|45)$`)
)

// ValidateDateKey checks the YYYY-MM-DD form and that it names a real
// calendar date.
func ValidateDateKey(dateKey string) error {
	if !dateKeyPattern.MatchString(dateKey) {
		return fmt.Errorf("date %q is not in YYYY-MM-DD form", dateKey)
	}
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return fmt.Errorf("date %q is not a real calendar date", dateKey)
	}
	return nil
}

// ValidateTimeKey checks the unpadded-hour H:MM form on a quarter-hour
// boundary.
func ValidateTimeKey(timeKey string) error {
	if !timeKeyPattern.MatchString(timeKey) {
		return fmt.Errorf("time %q is not a quarter-hour key", timeKey)
	}
	return nil
}

// ValidateSnapshot checks every time key in a copied-day snapshot.
func ValidateSnapshot(timeKeys []string) error {
	for _, timeKey := range timeKeys {
		if err := ValidateTimeKey(timeKey); err != nil {
			return err
		}
	}
	return nil
}
