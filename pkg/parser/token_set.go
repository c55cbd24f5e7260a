package parser

import "fmt"

const tokenSetWords = 8

// TokenSet is a set of kinds stored as a bitset.
type TokenSet[K Kind] struct {
	bits [tokenSetWords]uint64
}

// NewTokenSet creates a set containing kinds.
func NewTokenSet[K Kind](kinds ...K) TokenSet[K] {
	var ts TokenSet[K]
	for _, k := range kinds {
		ts = ts.With(k)
	}
	return ts
}

// With returns the set with k added.
func (ts TokenSet[K]) With(kinds ...K) TokenSet[K] {
	for _, k := range kinds {
		if int(k) >= tokenSetWords*64 {
			panic(fmt.Sprintf("parser: kind %s does not fit in a token set", k))
		}
		ts.bits[k/64] |= 1 << (k % 64)
	}
	return ts
}

// Union returns the union of both sets.
func (ts TokenSet[K]) Union(other TokenSet[K]) TokenSet[K] {
	for i := range ts.bits {
		ts.bits[i] |= other.bits[i]
	}
	return ts
}

// Contains reports whether k is in the set.
func (ts TokenSet[K]) Contains(k K) bool {
	if int(k) >= tokenSetWords*64 {
		return false
	}
	return ts.bits[k/64]&(1<<(k%64)) != 0
}
