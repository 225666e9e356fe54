package types

import (
	"regexp"
	"strings"
)

const (
	maxFioAddressLength = 64
	maxFioDomainLength  = 62
)

var fioNamePartRe = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)

// FioAddress is a parsed handle@domain name.
type FioAddress struct {
	Handle string
	Domain string
}

func (a FioAddress) String() string { return a.Handle + "@" + a.Domain }

// ParseFioAddress lowercases and splits s. It does not validate the parts.
func ParseFioAddress(s string) FioAddress {
	s = strings.ToLower(strings.TrimSpace(s))
	handle, domain, found := strings.Cut(s, "@")
	if !found {
		return FioAddress{Domain: s}
	}
	return FioAddress{Handle: handle, Domain: domain}
}

// ValidateFioAddressFormat checks the handle@domain naming rules.
func ValidateFioAddressFormat(s string) bool {
	if len(s) == 0 || len(s) > maxFioAddressLength || strings.Count(s, "@") != 1 {
		return false
	}
	a := ParseFioAddress(s)
	if len(a.Domain) > maxFioDomainLength {
		return false
	}
	return fioNamePartRe.MatchString(a.Handle) && fioNamePartRe.MatchString(a.Domain)
}

// ValidateTpidFormat accepts the empty string or a valid FIO address.
func ValidateTpidFormat(tpid string) bool {
	return tpid == "" || ValidateFioAddressFormat(tpid)
}
