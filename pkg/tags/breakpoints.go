package tags

import (
	"regexp"
	"strconv"
	"strings"
)

// Breakpoint is one entry of a responsive picture's sizes list: from
// MinWidth CSS pixels up, serve a Width x Height crop.
type Breakpoint struct {
	MinWidth int
	Width    int
	Height   int
}

var breakpointPattern = regexp.MustCompile(`^(\d+)(?:px)?\s*:\s*\[\s*(\d+)\s*x\s*(\d+)\s*\]$`)

// ParseBreakpoints reads "MIN: [WxH]" entries separated by commas, e.g.
// "768: [800x600], 1200: [1600x900]". Entries that do not match are returned
// separately so callers can report them.
func ParseBreakpoints(raw string) (valid []Breakpoint, invalid []string) {
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		match := breakpointPattern.FindStringSubmatch(entry)
		if match == nil {
			invalid = append(invalid, entry)
			continue
		}
		minWidth, errMin := strconv.Atoi(match[1])
		width, errW := strconv.Atoi(match[2])
		height, errH := strconv.Atoi(match[3])
		if errMin != nil || errW != nil || errH != nil {
			invalid = append(invalid, entry)
			continue
		}
		valid = append(valid, Breakpoint{MinWidth: minWidth, Width: width, Height: height})
	}
	return valid, invalid
}

// Media returns the media query for the breakpoint.
func (b Breakpoint) Media() string {
	return "(min-width: " + strconv.Itoa(b.MinWidth) + "px)"
}

func isBreakpointList(raw string) bool {
	valid, invalid := ParseBreakpoints(raw)
	return len(valid) > 0 && len(invalid) == 0
}
