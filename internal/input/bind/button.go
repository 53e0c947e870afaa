package bind

import (
	"strconv"
	"strings"
)

// Button is an X11 pointer button code. Buttons 1-5 are the standard
// left/middle/right/scroll buttons; higher codes are extra buttons.
type Button uint32

// ButtonNone marks a button binding that failed to parse.
const ButtonNone Button = 0

// buttonNameMap maps descriptive button names (lowercase) to codes.
var buttonNameMap = map[string]Button{
	"leftclick":    1,
	"left-click":   1,
	"middleclick":  2,
	"middle-click": 2,
	"rightclick":   3,
	"right-click":  3,
	"scrollup":     4,
	"scroll-up":    4,
	"scrolldown":   5,
	"scroll-down":  5,
}

// buttonNames holds the canonical name per standard button code.
var buttonNames = map[Button]string{
	1: "leftclick",
	2: "middleclick",
	3: "rightclick",
	4: "scrollup",
	5: "scrolldown",
}

// ButtonFromName resolves a button name or a literal decimal button
// number in [1,255]. Names are case-insensitive. Returns ButtonNone
// when the token resolves to neither.
func ButtonFromName(name string) Button {
	if b, ok := buttonNameMap[strings.ToLower(name)]; ok {
		return b
	}

	n, err := strconv.ParseUint(name, 10, 32)
	if err != nil || n < 1 || n > 255 {
		return ButtonNone
	}
	return Button(n)
}

// Name returns the canonical spelling for standard buttons and the
// decimal form for everything else.
func (b Button) Name() string {
	if b == ButtonNone {
		return ""
	}
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return strconv.FormatUint(uint64(b), 10)
}
