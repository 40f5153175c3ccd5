// Package party defines the identifiers used to name participants in the
// delegation protocol.
package party

import "sort"

// ID identifies one of the n workers (or the delegator, in contexts where it
// participates directly) at the transport layer: it names who a wire
// message is from or to. Shamir evaluation points are a separate concept,
// plain 1..n integers assigned by the session, and do not derive from ID.
type ID string

// IDSlice is a sortable, searchable collection of party IDs.
type IDSlice []ID

func (p IDSlice) Len() int           { return len(p) }
func (p IDSlice) Less(i, j int) bool { return p[i] < p[j] }
func (p IDSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Sort returns a sorted copy of the slice.
func (p IDSlice) Sort() IDSlice {
	sorted := make(IDSlice, len(p))
	copy(sorted, p)
	sort.Sort(sorted)
	return sorted
}

// Contains reports whether id appears in the slice.
func (p IDSlice) Contains(id ID) bool {
	for _, x := range p {
		if x == id {
			return true
		}
	}
	return false
}

// Remove returns a copy of the slice with id removed, if present.
func (p IDSlice) Remove(id ID) IDSlice {
	out := make(IDSlice, 0, len(p))
	for _, x := range p {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
