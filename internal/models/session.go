package models

// Session attribute keys round-tripped with the platform.
const (
	AttrLocale     = "LOCALE"
	AttrLastIntent = "last_intent"
	AttrLastSearch = "last_search"
	AttrState      = "state"
)

// Mode is the conversation mode carried through the "state" session
// attribute. It is serialized as a string and parsed back each turn; an
// absent or unrecognized value falls back to ModeSearch.
type Mode int

const (
	ModeSearch Mode = iota
)

const modeSearchName = "search"

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return modeSearchName
	default:
		return modeSearchName
	}
}

// ParseMode parses a serialized mode, defaulting to ModeSearch.
func ParseMode(s string) Mode {
	switch s {
	case modeSearchName:
		return ModeSearch
	default:
		return ModeSearch
	}
}
