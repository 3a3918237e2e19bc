package pager

import "strings"

// Impact is a gesture milestone that can trigger feedback
type Impact int

const (
	ImpactStart Impact = iota
	ImpactEnd
	ImpactThreshold
)

// String returns the lowercase milestone name
func (i Impact) String() string {
	switch i {
	case ImpactStart:
		return "start"
	case ImpactEnd:
		return "end"
	case ImpactThreshold:
		return "threshold"
	default:
		return "unknown"
	}
}

// ParseImpact parses a milestone name as written by String
func ParseImpact(s string) (Impact, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return ImpactStart, true
	case "end":
		return ImpactEnd, true
	case "threshold":
		return ImpactThreshold, true
	default:
		return 0, false
	}
}

// ImpactSet is a set of milestones
type ImpactSet uint8

// AllImpacts enables feedback on every milestone
const AllImpacts = ImpactSet(1<<ImpactStart | 1<<ImpactEnd | 1<<ImpactThreshold)

// NewImpactSet creates a set holding the given milestones
func NewImpactSet(impacts ...Impact) ImpactSet {
	var s ImpactSet
	for _, i := range impacts {
		s |= 1 << i
	}
	return s
}

// Has reports whether i is in the set
func (s ImpactSet) Has(i Impact) bool {
	return s&(1<<i) != 0
}

// Impacts lists the members in milestone order
func (s ImpactSet) Impacts() []Impact {
	var out []Impact
	for _, i := range []Impact{ImpactStart, ImpactEnd, ImpactThreshold} {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}
