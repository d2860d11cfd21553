package document

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLayout = errors.New("unknown document layout")

// Layout selects one of the three printed estimate designs.
type Layout string

const (
	LayoutStandard Layout = "standard"
	LayoutModern   Layout = "modern"
	LayoutBoxed    Layout = "boxed"
)

// Layouts lists the supported layouts in display order.
var Layouts = []Layout{LayoutStandard, LayoutModern, LayoutBoxed}

// ParseLayout accepts a layout name or its letter (A, B, C). Blank means standard.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "a":
		return LayoutStandard, nil
	case "modern", "b":
		return LayoutModern, nil
	case "boxed", "c":
		return LayoutBoxed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Letter is the short code used in file names.
func (l Layout) Letter() string {
	switch l {
	case LayoutModern:
		return "B"
	case LayoutBoxed:
		return "C"
	default:
		return "A"
	}
}

// MinRows is the number of table rows the printed form always shows.
func (l Layout) MinRows() int {
	if l == LayoutBoxed {
		return 5
	}
	return 6
}

type widths struct {
	name        int
	description int
	unit        int
}

func (l Layout) widths() widths {
	switch l {
	case LayoutModern:
		return widths{name: 28, description: 44, unit: 6}
	case LayoutBoxed:
		return widths{name: 20, description: 32, unit: 5}
	default:
		return widths{name: 24, description: 40, unit: 6}
	}
}
