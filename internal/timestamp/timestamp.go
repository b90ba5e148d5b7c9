// Package timestamp parses the POSIX touch stamp grammar and reads file
// times for partial updates.
package timestamp

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// Parse interprets a [[CC]YY]MMDDhhmm[.ss] stamp in local time. Two-digit
// years of 69 and below belong to the 2000s, 70 and above to the 1900s.
// When the year is omitted entirely it is taken from now.
func Parse(stamp string, now time.Time) (time.Time, error) {
	body := stamp
	seconds := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '.' {
			sec, err := field(body[i+1:], "seconds", 0, 59)
			if err != nil {
				return time.Time{}, err
			}
			seconds = sec
			body = body[:i]
			break
		}
	}

	year := now.Year()
	switch len(body) {
	case 12:
		y, err := strconv.Atoi(body[:4])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid year in timestamp %q", stamp)
		}
		year = y
		body = body[4:]
	case 10:
		y, err := strconv.Atoi(body[:2])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid year in timestamp %q", stamp)
		}
		if y >= 70 {
			year = 1900 + y
		} else {
			year = 2000 + y
		}
		body = body[2:]
	case 8:
	default:
		return time.Time{}, fmt.Errorf("invalid timestamp format %q", stamp)
	}

	month, err := field(body[:2], "month", 1, 12)
	if err != nil {
		return time.Time{}, err
	}
	day, err := field(body[2:4], "day", 1, 31)
	if err != nil {
		return time.Time{}, err
	}
	hour, err := field(body[4:6], "hour", 0, 23)
	if err != nil {
		return time.Time{}, err
	}
	minute, err := field(body[6:8], "minute", 0, 59)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(year, time.Month(month), day, hour, minute, seconds, 0, time.Local), nil
}

func field(s, name string, min, max int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < min || v > max {
		return 0, fmt.Errorf("invalid %s in timestamp", name)
	}
	return v, nil
}

// FileTimes reads the access and modification times of path. Partial touch
// updates need the untouched side from the current inode.
func FileTimes(path string) (atime, mtime time.Time, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return time.Unix(st.Atim.Sec, st.Atim.Nsec), time.Unix(st.Mtim.Sec, st.Mtim.Nsec), nil
}
