package model

// MatchSource indicates which pattern list produced a classification.
type MatchSource string

// Match source constants.
const (
	SourceNone   MatchSource = "NONE"
	SourceManual MatchSource = "MANUAL"
	SourceAuto   MatchSource = "AUTO"
)

// Classification is the outcome of classifying a single domain. A negative
// outcome is a real value (Matched == false), not an absence: the cache
// stores it so repeated misses short-circuit too.
type Classification struct {
	GroupName string
	GroupID   string
	Source    MatchSource
	Color     GroupColor
	Matched   bool
}

// NoMatch is the explicit negative classification.
var NoMatch = Classification{Source: SourceNone}

// ManualMatch builds a positive classification from a manual pattern.
func ManualMatch(groupName string, color GroupColor) Classification {
	return Classification{
		Matched:   true,
		GroupName: groupName,
		Color:     color,
		Source:    SourceManual,
	}
}

// AutoMatch builds a positive classification from an auto-pattern template.
// Auto-derived groups carry no explicit color.
func AutoMatch(groupName string) Classification {
	return Classification{
		Matched:   true,
		GroupName: groupName,
		Source:    SourceAuto,
	}
}
