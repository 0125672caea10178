// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"
)

// GroupColor is one of the tab-group colors the browser understands.
type GroupColor string

// Group color constants, matching the browser's fixed palette.
const (
	ColorNone   GroupColor = ""
	ColorGrey   GroupColor = "grey"
	ColorBlue   GroupColor = "blue"
	ColorRed    GroupColor = "red"
	ColorYellow GroupColor = "yellow"
	ColorGreen  GroupColor = "green"
	ColorPink   GroupColor = "pink"
	ColorPurple GroupColor = "purple"
	ColorCyan   GroupColor = "cyan"
	ColorOrange GroupColor = "orange"
)

// ParseGroupColor validates a color name. The empty string means
// "let the browser pick".
func ParseGroupColor(s string) (GroupColor, error) {
	c := GroupColor(s)
	switch c {
	case ColorNone, ColorGrey, ColorBlue, ColorRed, ColorYellow,
		ColorGreen, ColorPink, ColorPurple, ColorCyan, ColorOrange:
		return c, nil
	}
	return ColorNone, fmt.Errorf("unknown group color %q", s)
}

// Group is a named, colored collection that tabs are assigned into.
// Groups are created lazily on first match and are unique per (name, scope).
type Group struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Scope     string
	Color     GroupColor
	TabCount  int
}
