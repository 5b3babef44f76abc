// Package menu defines the context menu contract: which items exist, how
// verbosity lays them out, and when each one is enabled.
package menu

import (
	"fmt"
	"strings"
)

// Verbosity selects how many items the menu shows.
type Verbosity int

const (
	Maximum Verbosity = iota
	Normal
	Minimum
)

func (v Verbosity) String() string {
	switch v {
	case Maximum:
		return "maximum"
	case Normal:
		return "normal"
	case Minimum:
		return "minimum"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// ParseVerbosity parses "maximum", "normal" or "minimum" (any case).
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maximum":
		return Maximum, nil
	case "normal":
		return Normal, nil
	case "minimum":
		return Minimum, nil
	}
	return Maximum, fmt.Errorf("invalid verbosity %q: must be maximum, normal or minimum", s)
}

// Item is a menu command.
type Item int

const (
	SelectAll Item = iota
	Cut
	Copy
	Paste
	Delete
	DateTime
	RightToLeft
	Clear
	Find
)

var itemLabels = map[Item]string{
	SelectAll:   "Select all",
	Cut:         "Cut",
	Copy:        "Copy",
	Paste:       "Paste",
	Delete:      "Delete",
	DateTime:    "Date/Time",
	RightToLeft: "Right To Left",
	Clear:       "Clear",
	Find:        "Find",
}

// Label returns the display text of the item.
func (i Item) Label() string {
	if l, ok := itemLabels[i]; ok {
		return l
	}
	return fmt.Sprintf("Item(%d)", int(i))
}

func (i Item) String() string {
	return i.Label()
}

// Entry is one row of a layout: an item or a separator.
type Entry struct {
	Item      Item
	Separator bool
}

func item(i Item) Entry { return Entry{Item: i} }

var separator = Entry{Separator: true}

// Layout returns the rows shown for verbosity v, top to bottom.
func Layout(v Verbosity) []Entry {
	edit := []Entry{
		item(SelectAll), separator,
		item(Cut), item(Copy), item(Paste), item(Delete),
	}
	switch v {
	case Minimum:
		return edit
	case Normal:
		return append(edit,
			separator, item(DateTime),
			separator, item(Clear),
		)
	default:
		return append(edit,
			separator, item(DateTime),
			separator, item(RightToLeft),
			separator, item(Clear), item(Find),
		)
	}
}

// Items returns only the item rows of Layout(v).
func Items(v Verbosity) []Item {
	var items []Item
	for _, e := range Layout(v) {
		if !e.Separator {
			items = append(items, e.Item)
		}
	}
	return items
}

// State is what enablement depends on, sampled when the menu opens.
type State struct {
	TextEmpty    bool
	HasSelection bool
	RightToLeft  bool
}

// Enabled reports whether item can be chosen in state.
func Enabled(i Item, s State) bool {
	switch i {
	case SelectAll, Clear, Find:
		return !s.TextEmpty
	case Cut, Copy, Delete:
		return s.HasSelection
	default:
		return true
	}
}
