// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package models

import "strings"

// DataTypeSet is a small value-type set of [DataType] tags backed by a
// bitmask. The zero value is the empty set. All operations return a new set
// and never mutate the receiver, so sets can be freely shared and compared
// with ==.
type DataTypeSet struct {
	bits uint64
}

// NewDataTypeSet builds a set containing exactly the given types.
func NewDataTypeSet(types ...DataType) DataTypeSet {
	s := DataTypeSet{}
	for _, t := range types {
		s = s.Add(t)
	}
	return s
}

// Add returns a copy of the set with t included.
func (s DataTypeSet) Add(t DataType) DataTypeSet {
	return DataTypeSet{bits: s.bits | bit(t)}
}

// Remove returns a copy of the set with t excluded.
func (s DataTypeSet) Remove(t DataType) DataTypeSet {
	return DataTypeSet{bits: s.bits &^ bit(t)}
}

// Has reports whether t is a member of the set.
func (s DataTypeSet) Has(t DataType) bool {
	return s.bits&bit(t) != 0
}

// Union returns the set of types present in either operand.
func (s DataTypeSet) Union(other DataTypeSet) DataTypeSet {
	return DataTypeSet{bits: s.bits | other.bits}
}

// Intersect returns the set of types present in both operands.
func (s DataTypeSet) Intersect(other DataTypeSet) DataTypeSet {
	return DataTypeSet{bits: s.bits & other.bits}
}

// Difference returns the set of types present in s but not in other.
func (s DataTypeSet) Difference(other DataTypeSet) DataTypeSet {
	return DataTypeSet{bits: s.bits &^ other.bits}
}

// Empty reports whether the set contains no types.
func (s DataTypeSet) Empty() bool {
	return s.bits == 0
}

// Len returns the number of types in the set.
func (s DataTypeSet) Len() int {
	n := 0
	for t := firstDataType; t <= lastDataType; t++ {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Slice returns the members of the set in ascending [DataType] order.
// This is the stable enumeration order used when gathering commit
// contributions.
func (s DataTypeSet) Slice() []DataType {
	out := make([]DataType, 0, s.Len())
	for t := firstDataType; t <= lastDataType; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// String renders the set as "{nigori, bookmarks}" for logs and test output.
func (s DataTypeSet) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Slice() {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func bit(t DataType) uint64 {
	if t < firstDataType || t > lastDataType {
		return 0
	}
	return 1 << uint(t)
}
