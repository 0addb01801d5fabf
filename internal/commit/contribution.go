// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package commit

import "github.com/mkarev/vault-sync/models"

// Contribution is a bounded bundle of pending entries for a single data
// type, ready for transmission. Ownership passes to the caller once a
// contribution has been gathered: the contributor must not hand out the
// same entries again in a later call.
type Contribution struct {
	// Type is the data type every entry in the bundle belongs to.
	Type models.DataType

	// Entries holds the pending changes, at most the bound requested from
	// the contributor.
	Entries []models.CommitEntry
}

// EntryCount returns the number of entries in the contribution.
func (c *Contribution) EntryCount() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// ContributionMap is the output of one GatherContributions call: a mapping
// from data type to its gathered contribution. Keys are unique and iteration
// via Types preserves gathering order.
type ContributionMap struct {
	order  []models.DataType
	byType map[models.DataType]*Contribution
}

// NewContributionMap returns an empty map ready for use.
func NewContributionMap() *ContributionMap {
	return &ContributionMap{byType: make(map[models.DataType]*Contribution)}
}

// Put stores the contribution for its type. Storing a type already present
// replaces the contribution but keeps the type's original position.
func (m *ContributionMap) Put(c *Contribution) {
	if _, ok := m.byType[c.Type]; !ok {
		m.order = append(m.order, c.Type)
	}
	m.byType[c.Type] = c
}

// Get returns the contribution gathered for t, if any.
func (m *ContributionMap) Get(t models.DataType) (*Contribution, bool) {
	c, ok := m.byType[t]
	return c, ok
}

// Types returns the gathered types in gathering order.
func (m *ContributionMap) Types() []models.DataType {
	out := make([]models.DataType, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of types with a gathered contribution.
func (m *ContributionMap) Len() int {
	return len(m.order)
}

// Empty reports whether nothing was gathered.
func (m *ContributionMap) Empty() bool {
	return len(m.order) == 0
}

// TotalEntries returns the sum of entry counts across all contributions.
func (m *ContributionMap) TotalEntries() int {
	n := 0
	for _, c := range m.byType {
		n += c.EntryCount()
	}
	return n
}

// Entries flattens the map into a single slice of commit entries in
// gathering order, the order they are transmitted in.
func (m *ContributionMap) Entries() []models.CommitEntry {
	out := make([]models.CommitEntry, 0, m.TotalEntries())
	for _, t := range m.order {
		out = append(out, m.byType[t].Entries...)
	}
	return out
}
