package request

import "strings"

// Headers is an ordered header map. Lookup and overwrite match names
// case-insensitively, the casing of the first insertion is what serialization
// emits, and iteration follows insertion order.
type Headers struct {
	entries []headerEntry
}

type headerEntry struct {
	name  string // casing of the first insertion
	value string
}

func NewHeaders() *Headers {
	return &Headers{}
}

// Get returns the value stored under name, matched case-insensitively.
func (h *Headers) Get(name string) (string, bool) {
	if i := h.index(name); i >= 0 {
		return h.entries[i].value, true
	}
	return "", false
}

// Set stores value under name. An existing entry keeps its position and its
// original casing; a new entry is appended with the given casing.
func (h *Headers) Set(name, value string) {
	if i := h.index(name); i >= 0 {
		h.entries[i].value = value
		return
	}
	h.entries = append(h.entries, headerEntry{name: name, value: value})
}

// Del removes the entry stored under name, if any.
func (h *Headers) Del(name string) {
	if i := h.index(name); i >= 0 {
		h.entries = append(h.entries[:i], h.entries[i+1:]...)
	}
}

func (h *Headers) Has(name string) bool {
	return h.index(name) >= 0
}

func (h *Headers) Len() int {
	return len(h.entries)
}

// VisitAll calls f for every entry in insertion order.
func (h *Headers) VisitAll(f func(name, value string)) {
	for _, e := range h.entries {
		f(e.name, e.value)
	}
}

func (h *Headers) index(name string) int {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].name, name) {
			return i
		}
	}
	return -1
}
