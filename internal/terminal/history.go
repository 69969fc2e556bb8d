package terminal

// History is the submitted-command list plus a navigation cursor. Index -1
// means "not navigating"; otherwise index counts back from the newest entry.
// Not safe for concurrent use; Session guards it.
type History struct {
	entries []string
	index   int
}

func NewHistory() *History {
	return &History{index: -1}
}

func (h *History) Push(command string) {
	h.entries = append(h.entries, command)
	h.index = -1
}

// Up moves one step towards older entries. ok is false when the cursor was
// already on the oldest entry or the history is empty.
func (h *History) Up() (string, bool) {
	if len(h.entries) == 0 || h.index >= len(h.entries)-1 {
		return "", false
	}
	h.index++
	return h.current(), true
}

// Down moves one step towards newer entries; stepping past the newest one
// leaves navigation and yields the empty input.
func (h *History) Down() (string, bool) {
	switch {
	case h.index > 0:
		h.index--
		return h.current(), true
	case h.index == 0:
		h.index = -1
		return "", true
	default:
		return "", false
	}
}

func (h *History) Index() int { return h.index }

func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) current() string {
	return h.entries[len(h.entries)-1-h.index]
}
