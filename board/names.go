package board

import "strings"

var colorNames = map[Color]string{
	ColorRed:   "red",
	ColorGreen: "green",
	ColorBlue:  "blue",
	ColorOther: "other",
}

var kindNames = map[Kind]string{
	KindAnt:         "ant",
	KindButterfly:   "butterfly",
	KindSpider:      "spider",
	KindGrasshopper: "grasshopper",
	KindUnknown:     "unknown",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "other"
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseColor maps a color name to a Color. Unrecognized names become ColorOther.
func ParseColor(name string) Color {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c
		}
	}
	return ColorOther
}

// ParseKind maps a species name to a Kind. Unrecognized names become KindUnknown.
func ParseKind(name string) Kind {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return KindUnknown
}
