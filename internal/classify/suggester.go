package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/joshsymonds/tab-corral/internal/common"
	"github.com/joshsymonds/tab-corral/internal/model"
)

// Suggestion proposes a manual pattern for a domain that keeps showing up
// among ungrouped tabs without matching anything.
type Suggestion struct {
	Domain    string
	Pattern   string
	GroupName string
	TabCount  int
}

// Suggester scans tab inventories for domains worth a manual pattern.
type Suggester struct {
	classifier *Classifier
	minTabs    int
}

// NewSuggester creates a suggester. Domains need at least minTabs ungrouped
// tabs before they are proposed; values below 1 are treated as 1.
func NewSuggester(classifier *Classifier, minTabs int) *Suggester {
	if minTabs < 1 {
		minTabs = 1
	}
	return &Suggester{classifier: classifier, minTabs: minTabs}
}

// Suggest counts ungrouped tabs per domain and proposes an escaped
// exact-domain pattern for each frequent domain the current configuration
// doesn't already classify. Suggestions come back most-frequent first.
func (s *Suggester) Suggest(tabs []model.Tab) []Suggestion {
	counts := make(map[string]int)
	for _, tab := range tabs {
		if tab.Grouped() || tab.URL == "" || common.IsExcludedURL(tab.URL) {
			continue
		}
		domain, err := common.DomainFromURL(tab.URL)
		if err != nil {
			continue
		}
		counts[domain]++
	}

	var suggestions []Suggestion
	for domain, count := range counts {
		if count < s.minTabs {
			continue
		}
		if s.classifier.Classify(domain).Matched {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Domain:    domain,
			Pattern:   "^" + regexp.QuoteMeta(domain) + "$",
			GroupName: groupNameFor(domain),
			TabCount:  count,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].TabCount != suggestions[j].TabCount {
			return suggestions[i].TabCount > suggestions[j].TabCount
		}
		return suggestions[i].Domain < suggestions[j].Domain
	})

	return suggestions
}

// groupNameFor derives a display name from a domain's leftmost meaningful
// label, skipping a bare "www".
func groupNameFor(domain string) string {
	labels := strings.Split(domain, ".")
	if len(labels) > 1 && labels[0] == "www" {
		labels = labels[1:]
	}
	return capitalize(labels[0])
}
