package policy

import (
	"strings"
)

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy -output=strategy_string.go
//go:generate go tool stringer -type=Accessibility -trimprefix=Accessibility -output=accessibility_string.go

// Strategy selects how operations are partitioned into interfaces.
type Strategy int

const (
	// StrategyNone puts every operation into one interface.
	StrategyNone Strategy = iota
	// StrategyByEndpoint creates one single-method interface per operation.
	StrategyByEndpoint
	// StrategyByTag creates one interface per tag.
	StrategyByTag
)

var strategyNames = []string{"none", "byEndpoint", "byTag"}

// ParseStrategy parses a partition strategy name, case-insensitively.
// The empty string, "none" and "unset" all mean StrategyNone.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "unset":
		return StrategyNone, true
	case "byendpoint":
		return StrategyByEndpoint, true
	case "bytag":
		return StrategyByTag, true
	default:
		return 0, false
	}
}

// Accessibility controls whether generated interfaces are exported.
type Accessibility int

const (
	AccessibilityPublic Accessibility = iota
	AccessibilityInternal
)

var accessibilityNames = []string{"public", "internal"}

// ParseAccessibility parses "public" or "internal"; empty means public.
func ParseAccessibility(s string) (Accessibility, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "public":
		return AccessibilityPublic, true
	case "internal":
		return AccessibilityInternal, true
	default:
		return 0, false
	}
}
