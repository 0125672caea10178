// Package template compiles auto-pattern templates into domain matchers.
//
// A template is a literal domain skeleton with two token kinds: "*" matches
// exactly one domain label, and the single required ":name" placeholder
// matches one label and captures it as the group name. For example
// ":name.*.example.com" matches "project.dev.example.com" and captures
// "project".
package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joshsymonds/tab-corral/internal/common"
	"github.com/joshsymonds/tab-corral/internal/model"
)

// Token syntax.
const (
	NamePlaceholder = ":name"
	Wildcard        = "*"
)

// labelPattern matches exactly one domain label (no dots).
const labelPattern = "[^.]+"

// DefaultTemplate is installed when no usable templates exist: it groups any
// domain by its leftmost label.
const DefaultTemplate = NamePlaceholder + "." + Wildcard

// Compile turns a template string into a compiled auto-pattern. It fails
// with common.ErrInvalidTemplate unless the template contains exactly one
// name placeholder.
func Compile(tmpl string) (model.AutoPattern, error) {
	if tmpl == "" {
		return model.AutoPattern{}, fmt.Errorf("%w: template is empty", common.ErrInvalidTemplate)
	}

	switch n := strings.Count(tmpl, NamePlaceholder); {
	case n == 0:
		return model.AutoPattern{}, fmt.Errorf("%w: %q has no %s placeholder", common.ErrInvalidTemplate, tmpl, NamePlaceholder)
	case n > 1:
		return model.AutoPattern{}, fmt.Errorf("%w: %q has %d %s placeholders, want exactly one", common.ErrInvalidTemplate, tmpl, n, NamePlaceholder)
	}

	expr, err := buildExpr(tmpl)
	if err != nil {
		return model.AutoPattern{}, err
	}

	matcher, err := regexp.Compile(expr)
	if err != nil {
		// Unreachable for well-formed builds; guards against future token changes.
		return model.AutoPattern{}, fmt.Errorf("%w: %q: %v", common.ErrInvalidTemplate, tmpl, err)
	}

	return model.AutoPattern{
		Template:     tmpl,
		Matcher:      matcher,
		NamePosition: 1,
	}, nil
}

// buildExpr translates the template into an anchored regular expression.
// Literal runs are quoted, wildcards become one label each, and the name
// placeholder becomes the sole capturing group.
func buildExpr(tmpl string) (string, error) {
	var b strings.Builder
	b.WriteString("^")

	rest := tmpl
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, NamePlaceholder):
			b.WriteString("(" + labelPattern + ")")
			rest = rest[len(NamePlaceholder):]
		case strings.HasPrefix(rest, Wildcard):
			b.WriteString(labelPattern)
			rest = rest[len(Wildcard):]
		default:
			next := nextToken(rest)
			b.WriteString(regexp.QuoteMeta(rest[:next]))
			rest = rest[next:]
		}
	}

	b.WriteString("$")
	return b.String(), nil
}

// nextToken returns the length of the literal run before the next token.
func nextToken(s string) int {
	end := len(s)
	if i := strings.Index(s, NamePlaceholder); i >= 0 && i < end {
		end = i
	}
	if i := strings.Index(s, Wildcard); i >= 0 && i < end {
		end = i
	}
	if end == 0 {
		return 1
	}
	return end
}
