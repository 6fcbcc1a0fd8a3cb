// Package sessionkey derives the identifier of one concrete occurrence of a
// recurring schedule item. A session is not a stored entity: it exists the
// moment an attendance record references its key, and two scans on different
// calendar days against the same schedule item fall into different sessions.
package sessionkey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar-date part of a session key.
const dateLayout = "2006-01-02"

// Derive builds the session key for scheduleItemID on the calendar day of ref,
// interpreted in ref's location. The result is stable for a given
// (scheduleItemID, calendar day) pair.
func Derive(scheduleItemID int64, ref time.Time) string {
	return fmt.Sprintf("%d-%s", scheduleItemID, ref.Format(dateLayout))
}

// Parse splits a session key back into its schedule item id and calendar day.
// The date is returned at midnight UTC.
func Parse(key string) (scheduleItemID int64, day time.Time, err error) {
	idx := strings.Index(key, "-")
	if idx <= 0 || idx == len(key)-1 {
		return 0, time.Time{}, fmt.Errorf("malformed session key %q", key)
	}

	scheduleItemID, err = strconv.ParseInt(key[:idx], 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session key %q: %w", key, err)
	}

	day, err = time.Parse(dateLayout, key[idx+1:])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session key %q: %w", key, err)
	}

	return scheduleItemID, day, nil
}

// Valid reports whether key is a well-formed session key.
func Valid(key string) bool {
	_, _, err := Parse(key)
	return err == nil
}
