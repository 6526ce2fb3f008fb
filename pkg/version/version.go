// Package version provides contract version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the contract version implemented by this library.
const Current = "1.0"

// ContractVersion represents a parsed "major.minor" contract version.
type ContractVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (ContractVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return ContractVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return ContractVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return ContractVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return ContractVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v ContractVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v ContractVersion) Compatible(other ContractVersion) bool {
	return v.Major == other.Major
}
