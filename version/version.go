/*
package version tracks the semantic version of cosmoconv and checks that
config files were written for a compatible release.
*/
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the semantic version number of the source code.
const SourceVersion = "0.1.0"

// ErrInvalid is returned for strings that are not semantic version numbers.
var ErrInvalid = errors.New("version: string does not take the form of " +
	"three period-separated non-negative numbers")

// Version is a parsed semantic version number.
type Version struct {
	Major, Minor, Patch int
}

// Source returns the parsed SourceVersion.
func Source() Version {
	v, err := Parse(SourceVersion)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a semantic version number string of the form "1.2.3". A
// leading "v" is accepted.
func Parse(s string) (Version, error) {
	toks := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(toks) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	var out [3]int
	for i := range toks {
		n, err := strconv.Atoi(toks[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		out[i] = n
	}

	return Version{out[0], out[1], out[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or +1 depending on whether v is earlier than, equal
// to, or later than w.
func (v Version) Compare(w Version) int {
	switch {
	case v.Major != w.Major:
		return sign(v.Major - w.Major)
	case v.Minor != w.Minor:
		return sign(v.Minor - w.Minor)
	default:
		return sign(v.Patch - w.Patch)
	}
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return +1
	}
	return 0
}

// Later returns true if s1 represents a later version of the source than
// s2. An error is returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	v1, err := Parse(s1)
	if err != nil {
		return false, err
	}
	v2, err := Parse(s2)
	if err != nil {
		return false, err
	}
	return v1.Compare(v2) > 0, nil
}

// CheckCompatible returns an error if a file written for version s cannot be
// read by this source: s must be valid, share the source's major version,
// and not be later than the source.
func CheckCompatible(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	src := Source()
	if v.Major != src.Major || v.Compare(src) > 0 {
		return fmt.Errorf("version: file was written for version %s, "+
			"but this is version %s", v, src)
	}
	return nil
}
