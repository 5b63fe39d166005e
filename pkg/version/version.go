package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed platform version of the form "A.B.C.D-Build".
// The build suffix is optional and defaults to 0.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Revision int
	Build    int
}

// Parse parses a version string into Version. The string must contain
// exactly four dot-separated integer components before an optional
// "-build" suffix; anything else is an error.
func Parse(s string) (Version, error) {
	base := s
	build := 0

	if idx := strings.Index(s, "-"); idx >= 0 {
		base = s[:idx]
		b, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return Version{}, fmt.Errorf("invalid build number in version %q: %w", s, err)
		}
		if b < 0 {
			return Version{}, fmt.Errorf("negative build number in version %q", s)
		}
		build = b
	}

	parts := strings.Split(base, ".")
	if len(parts) != 4 {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	nums := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version component %q in %q: %w", part, s, err)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("negative version component %q in %q", part, s)
		}
		nums[i] = n
	}

	return Version{
		Major:    nums[0],
		Minor:    nums[1],
		Patch:    nums[2],
		Revision: nums[3],
		Build:    build,
	}, nil
}

// MustParse parses a version string and panics on failure. Intended for
// compile-time constants such as capability thresholds.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// AtLeast reports whether v >= other using lexicographic comparison over
// (major, minor, patch, revision, build). Equal versions compare as true.
func (v Version) AtLeast(other Version) bool {
	pairs := [5][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
		{v.Revision, other.Revision},
		{v.Build, other.Build},
	}
	for _, p := range pairs {
		if p[0] > p[1] {
			return true
		}
		if p[0] < p[1] {
			return false
		}
	}
	return true
}

// String formats the version back into "A.B.C.D-Build" form. The build
// suffix is omitted when zero.
func (v Version) String() string {
	if v.Build == 0 {
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Revision)
	}
	return fmt.Sprintf("%d.%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.Revision, v.Build)
}
