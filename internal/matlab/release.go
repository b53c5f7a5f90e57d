// Package matlab models MATLAB release identifiers of the R<year><a|b> form.
package matlab

import (
	"fmt"
	"regexp"
	"strconv"
)

// Release is one MATLAB release, e.g. R2017a. Releases are ordered by year,
// with the "b" release of a year following the "a" release.
type Release struct {
	Year   int
	Suffix byte // 'a' or 'b'
}

var releaseRe = regexp.MustCompile(`^R(\d{4})([ab])$`)

// ParseRelease parses an identifier of the form R2017a. Anything else is
// rejected: only the release-year form maps to an MCR installer.
func ParseRelease(s string) (Release, error) {
	m := releaseRe.FindStringSubmatch(s)
	if m == nil {
		return Release{}, fmt.Errorf("invalid MATLAB release %q (want e.g. R2017a)", s)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Release{}, fmt.Errorf("invalid MATLAB release %q: %w", s, err)
	}
	return Release{Year: year, Suffix: m[2][0]}, nil
}

func (r Release) String() string {
	return fmt.Sprintf("R%04d%c", r.Year, r.Suffix)
}

// Compare orders r against o, returning -1, 0 or +1.
func (r Release) Compare(o Release) int {
	if r.Year != o.Year {
		if r.Year < o.Year {
			return -1
		}
		return 1
	}
	if r.Suffix != o.Suffix {
		if r.Suffix < o.Suffix {
			return -1
		}
		return 1
	}
	return 0
}

// After reports whether r is strictly newer than o.
func (r Release) After(o Release) bool { return r.Compare(o) > 0 }
