package request

import "strings"

// Args is an ordered string-to-string map used for the query and for decoded
// form bodies. Keys keep the position of their first appearance; Set
// overwrites in place.
type Args struct {
	pairs []argPair
}

type argPair struct {
	key   string
	value string
}

// ParseQuery parses an &-joined key=value string. A duplicate key keeps its
// original position and takes the value of its last occurrence.
func ParseQuery(s string) *Args {
	a := &Args{}
	if s == "" {
		return a
	}
	for _, pair := range strings.Split(s, "&") {
		k, v, _ := strings.Cut(pair, "=")
		a.Set(k, v)
	}
	return a
}

func (a *Args) Get(key string) (string, bool) {
	if i := a.index(key); i >= 0 {
		return a.pairs[i].value, true
	}
	return "", false
}

// Set stores value under key, keeping the position of an existing key.
func (a *Args) Set(key, value string) {
	if i := a.index(key); i >= 0 {
		a.pairs[i].value = value
		return
	}
	a.pairs = append(a.pairs, argPair{key: key, value: value})
}

// Del removes key and reports whether it was present.
func (a *Args) Del(key string) bool {
	if i := a.index(key); i >= 0 {
		a.pairs = append(a.pairs[:i], a.pairs[i+1:]...)
		return true
	}
	return false
}

func (a *Args) Has(key string) bool {
	return a.index(key) >= 0
}

func (a *Args) Len() int {
	return len(a.pairs)
}

// VisitAll calls f for every pair in insertion order.
func (a *Args) VisitAll(f func(key, value string)) {
	for _, p := range a.pairs {
		f(p.key, p.value)
	}
}

// Encode joins the pairs as key=value&key=value in insertion order. Values
// are written exactly as stored, no escaping is applied.
func (a *Args) Encode() string {
	var b strings.Builder
	for i, p := range a.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}

func (a *Args) index(key string) int {
	for i := range a.pairs {
		if a.pairs[i].key == key {
			return i
		}
	}
	return -1
}
