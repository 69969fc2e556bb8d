package terminal

import (
	"sort"
	"sync"
	"time"
)

// DateLayout renders "date" the way a browser prints Date.prototype.toString.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

type Entry struct {
	Name   string
	Output string
}

// Dictionary maps exact command strings to canned output. Dynamic entries are
// rendered at resolution time.
type Dictionary struct {
	mu      sync.RWMutex
	static  map[string]string
	dynamic map[string]func() string
}

func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{
		static:  make(map[string]string, len(entries)),
		dynamic: map[string]func() string{},
	}
	for _, e := range entries {
		d.static[e.Name] = e.Output
	}
	return d
}

// NewDefaultDictionary adds the dynamic "date" command on top of entries.
func NewDefaultDictionary(entries []Entry, clock func() time.Time) *Dictionary {
	if clock == nil {
		clock = time.Now
	}

	d := NewDictionary(entries)
	d.Register("date", func() string {
		return clock().Format(DateLayout)
	})
	return d
}

func (d *Dictionary) Register(name string, render func() string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dynamic[name] = render
}

func (d *Dictionary) Lookup(command string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if render, ok := d.dynamic[command]; ok {
		return render(), true
	}
	out, ok := d.static[command]
	return out, ok
}

// Names lists every known command plus the built-in clear, sorted.
func (d *Dictionary) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.static)+len(d.dynamic)+1)
	for name := range d.static {
		names = append(names, name)
	}
	for name := range d.dynamic {
		if _, dup := d.static[name]; !dup {
			names = append(names, name)
		}
	}
	names = append(names, CommandClear)
	sort.Strings(names)
	return names
}
