package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is the persona a response is written for.
type Role string

const (
	RoleTrader   Role = "trader"
	RoleInvestor Role = "investor"
	RoleAnalyst  Role = "analyst"
)

// Title returns the role with its first letter upper-cased ("trader" -> "Trader").
// Unrecognised roles are title-cased verbatim.
func (r Role) Title() string {
	s := string(r)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Normalize lower-cases and trims the role.
func (r Role) Normalize() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}

// Insights holds one canned insight per role. All three are always populated.
type Insights struct {
	Trader   string `json:"trader"`
	Investor string `json:"investor"`
	Analyst  string `json:"analyst"`
}

// For picks the insight for r. Unknown roles get the trader insight.
func (i Insights) For(r Role) string {
	var s string
	switch r.Normalize() {
	case RoleInvestor:
		s = i.Investor
	case RoleAnalyst:
		s = i.Analyst
	default:
		s = i.Trader
	}
	if s == "" {
		s = i.Trader
	}
	if s == "" {
		return "No specific insights available."
	}
	return s
}
