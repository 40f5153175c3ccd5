// Package sharing implements the secret-sharing engine (collaborator C3):
// packed Shamir (t, n) sharing and additive n-of-n sharing over the field
// defined by pkg/field, plus the homomorphic operations the MPC executor
// (pkg/mpc) needs on top of them.
//
// The sharing layer is a capability set {Share, Reconstruct, Add, Scale,
// and optionally MulLocal} dispatched at session setup by scheme tag,
// never mixed within a single ShareSet.
package sharing

import (
	"sort"

	"github.com/luxfi/eos/pkg/field"
)

// SchemeKind tags which sharing scheme a ShareSet was produced under.
type SchemeKind int

const (
	// Shamir is packed (t, n) Shamir secret sharing.
	Shamir SchemeKind = iota
	// Additive is n-of-n additive sharing.
	Additive
)

func (k SchemeKind) String() string {
	switch k {
	case Shamir:
		return "shamir"
	case Additive:
		return "additive"
	default:
		return "unknown"
	}
}

// Share is a single party's coordinate (i, v) of a sharing polynomial (or,
// for additive sharing, its random summand).
type Share struct {
	Index int
	Value field.Element
}

// ShareSet is an ordered collection of shares produced by one sharing
// operation: all members share a SchemeKind, Degree, SharingID and total
// party count N.
type ShareSet struct {
	Scheme    SchemeKind
	Degree    int
	SharingID uint64
	N         int
	shares    map[int]Share
}

// NewShareSet constructs an empty ShareSet with the given metadata.
func NewShareSet(scheme SchemeKind, degree, n int, sharingID uint64) ShareSet {
	return ShareSet{
		Scheme:    scheme,
		Degree:    degree,
		N:         n,
		SharingID: sharingID,
		shares:    make(map[int]Share, n),
	}
}

// Put installs a share at its index. It overwrites any existing share at
// the same index.
func (s *ShareSet) Put(sh Share) { s.shares[sh.Index] = sh }

// Get returns the share at index i, if present.
func (s ShareSet) Get(i int) (Share, bool) {
	sh, ok := s.shares[i]
	return sh, ok
}

// Len returns the number of shares currently present (which may be less
// than N if the set represents a received subset rather than a full
// dispersal).
func (s ShareSet) Len() int { return len(s.shares) }

// Indices returns the sorted indices of the present shares.
func (s ShareSet) Indices() []int {
	idx := make([]int, 0, len(s.shares))
	for i := range s.shares {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Values returns shares in a deterministic order matching Indices.
func (s ShareSet) Values() []Share {
	idx := s.Indices()
	out := make([]Share, len(idx))
	for i, x := range idx {
		out[i] = s.shares[x]
	}
	return out
}

// Subset returns a new ShareSet restricted to the given indices, preserving
// metadata. Indices not present in s are silently skipped.
func (s ShareSet) Subset(indices []int) ShareSet {
	out := NewShareSet(s.Scheme, s.Degree, s.N, s.SharingID)
	for _, i := range indices {
		if sh, ok := s.shares[i]; ok {
			out.Put(sh)
		}
	}
	return out
}

// SameScheme reports whether two ShareSets use the same scheme and the same
// party count N, used to guard homomorphic operations from combining
// incompatible shares. It does not compare SharingID or Degree.
func (s ShareSet) SameScheme(other ShareSet) bool {
	return s.Scheme == other.Scheme && s.N == other.N
}
