package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Quote numbers are MMDDYYHHmm, every component zero-padded to two digits.
// Resolution is one minute, so two quotes saved in the same minute collide;
// that is a known limitation of the format, which existing stored files
// depend on, and it is not disambiguated here.
const numberLayout = "0102061504"

var filenamePattern = regexp.MustCompile(`^quote-(\d+)\.json$`)

// NumberAt derives a quote number from the given wall-clock time.
func NumberAt(t time.Time) string {
	return t.Format(numberLayout)
}

// Filename returns the storage filename for a quote number.
func Filename(quoteNumber string) string {
	return fmt.Sprintf("quote-%s.json", quoteNumber)
}

// NumberFromFilename extracts the quote number out of a storage filename.
// It returns ErrInvalidFilename for anything that is not quote-<digits>.json.
func NumberFromFilename(filename string) (string, error) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", ErrInvalidFilename
	}
	return m[1], nil
}

// ValidFilename reports whether filename is a well-formed quote filename.
// Handlers check this before touching the store so that request paths can
// never reach outside the quotes directory.
func ValidFilename(filename string) bool {
	if strings.ContainsAny(filename, `/\`) {
		return false
	}
	_, err := NumberFromFilename(filename)
	return err == nil
}
