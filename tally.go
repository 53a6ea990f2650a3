package logincount

import (
	"cmp"
	"slices"
)

// Entry is one player's login count.
type Entry struct {
	Name  string
	Count int
}

// Tally counts logins per player. The zero value is an empty Tally ready to
// use.
type Tally struct {
	counts map[string]int
	order  []string
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: map[string]int{}}
}

// Record adds one login for name.
func (t *Tally) Record(name string) {
	if t.counts == nil {
		t.counts = map[string]int{}
	}
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

// Count returns the number of logins recorded for name.
func (t *Tally) Count(name string) int {
	return t.counts[name]
}

// Len returns the number of distinct players.
func (t *Tally) Len() int {
	return len(t.order)
}

// Total returns the number of logins recorded for all players.
func (t *Tally) Total() int {
	var total int
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Ranked returns every player's count, highest first. Players with equal
// counts keep the order in which they were first recorded.
func (t *Tally) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		entries = append(entries, Entry{Name: name, Count: t.counts[name]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries
}
