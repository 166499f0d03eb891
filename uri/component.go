package uri

import (
	"fmt"
	"math/bits"
	"strings"
)

// Component identifies a syntactic part of a URI.
type Component uint8

const (
	Scheme Component = iota
	Authority
	Userinfo
	User
	Password
	Host
	Port
	Path
	Query
	Fragment
	// CountOf is the number of components. As an argument it means "all components".
	CountOf
)

var compNames = [CountOf]string{
	Scheme:    "scheme",
	Authority: "authority",
	Userinfo:  "userinfo",
	User:      "user",
	Password:  "password",
	Host:      "host",
	Port:      "port",
	Path:      "path",
	Query:     "query",
	Fragment:  "fragment",
}

// String returns the canonical lowercase component name.
// It returns an empty string for [CountOf] and out-of-range values.
func (c Component) String() string {
	if c >= CountOf {
		return ""
	}
	return compNames[c]
}

// IsValid reports whether c names a component.
func (c Component) IsValid() bool { return c < CountOf }

// ComponentOf returns the component with the given name, compared case-insensitively.
func ComponentOf(name string) (Component, bool) {
	for c, n := range compNames {
		if strings.EqualFold(n, name) {
			return Component(c), true
		}
	}
	return CountOf, false
}

// Presence is a bitset with one bit per component, bit index equal to the component ordinal.
type Presence uint16

const allPresent Presence = 1<<CountOf - 1

const authorityParts = 1<<Host | 1<<User | 1<<Password | 1<<Port | 1<<Userinfo

// Test reports whether c is present. [CountOf] tests whether any component is present.
func (p Presence) Test(c Component) bool {
	switch {
	case c == CountOf:
		return p&allPresent != 0
	case c > CountOf:
		return false
	}
	return p&(1<<c) != 0
}

// Set marks c present. [CountOf] marks every component present.
func (p *Presence) Set(c Component) {
	switch {
	case c == CountOf:
		*p = allPresent
	case c < CountOf:
		*p |= 1 << c
	}
}

// Clear marks c absent. [CountOf] clears every component.
func (p *Presence) Clear(c Component) {
	switch {
	case c == CountOf:
		*p = 0
	case c < CountOf:
		*p &^= 1 << c
	}
}

// Count returns the number of present components.
func (p Presence) Count() int { return bits.OnesCount16(uint16(p & allPresent)) }

// AnyAuthority reports whether any of host, user, password, port or userinfo is present.
func (p Presence) AnyAuthority() bool { return p&authorityParts != 0 }

// String returns the bitset in binary, most significant component first.
func (p Presence) String() string { return fmt.Sprintf("%0*b", int(CountOf), uint16(p&allPresent)) }
