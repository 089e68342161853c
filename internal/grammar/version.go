package grammar

import (
	"fmt"
	"strings"
)

// Version is one of the HTTP versions the grammar recognizes.
type Version uint8

const (
	VersionUnknown Version = iota
	HTTP09
	HTTP10
	HTTP11
	HTTP20
	HTTP30
)

var versionNames = [...]string{
	VersionUnknown: "",
	HTTP09:         "HTTP/0.9",
	HTTP10:         "HTTP/1.0",
	HTTP11:         "HTTP/1.1",
	HTTP20:         "HTTP/2.0",
	HTTP30:         "HTTP/3.0",
}

// String returns the wire form, e.g. "HTTP/1.1".
func (v Version) String() string {
	if int(v) >= len(versionNames) {
		return ""
	}
	return versionNames[v]
}

var knownVersions = map[string]Version{
	"0.9": HTTP09,
	"1.0": HTTP10,
	"1.1": HTTP11,
	"2.0": HTTP20,
	"3.0": HTTP30,
}

// VersionError reports a version that cannot be used for this message.
// Known is true when the version is well-formed but not implemented.
type VersionError struct {
	Raw   string
	Known bool
}

func (e *VersionError) Error() string {
	if e.Known {
		return fmt.Sprintf("unsupported HTTP version %s", e.Raw)
	}
	return fmt.Sprintf("unknown HTTP version %s", e.Raw)
}

// ResolveVersion maps the three bytes after "HTTP/" onto the closed set of
// versions. Only HTTP/1.1 resolves successfully.
func ResolveVersion(raw string) (Version, error) {
	v, ok := knownVersions[raw]
	switch {
	case !ok:
		return VersionUnknown, &VersionError{Raw: raw}
	case v != HTTP11:
		return v, &VersionError{Raw: raw, Known: true}
	}
	return v, nil
}

// LookupVersion maps a full wire form such as "HTTP/1.0" onto the closed set,
// without the HTTP/1.1-only restriction of ResolveVersion.
func LookupVersion(wire string) (Version, bool) {
	if len(wire) != len("HTTP/1.1") || !strings.EqualFold(wire[:5], "HTTP/") {
		return VersionUnknown, false
	}
	v, ok := knownVersions[wire[5:]]
	return v, ok
}
