// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package models

// DataType identifies a category of synchronizable vault entity.
// Every pending local change, commit entry, and server-side record carries
// exactly one DataType. The value is part of the wire format and must not
// be renumbered.
type DataType int

const (
	// Nigori is the reserved type carrying encryption-key metadata
	// (the account key bag). Nigori changes must reach the server before
	// any entity encrypted under a new key, so commit batching always
	// isolates Nigori into its own batch.
	Nigori DataType = 1

	// DeviceInfo describes the committing device (name, platform, last
	// activity). Committed ahead of regular types so other devices learn
	// about this client early in a sync session.
	DeviceInfo DataType = 2

	// Preferences holds user settings that should propagate quickly
	// between devices.
	Preferences DataType = 3

	// Bookmarks represents saved vault bookmarks.
	Bookmarks DataType = 4

	// Passwords represents login credential entries.
	Passwords DataType = 5

	// Autofill represents form autofill entries.
	Autofill DataType = 6

	// History represents browsing/usage history entries.
	History DataType = 7
)

// firstDataType and lastDataType bound iteration over the known types.
const (
	firstDataType = Nigori
	lastDataType  = History
)

// String returns the lowercase wire name of the data type.
// Unknown values are rendered as "unknown".
func (t DataType) String() string {
	switch t {
	case Nigori:
		return "nigori"
	case DeviceInfo:
		return "device_info"
	case Preferences:
		return "preferences"
	case Bookmarks:
		return "bookmarks"
	case Passwords:
		return "passwords"
	case Autofill:
		return "autofill"
	case History:
		return "history"
	default:
		return "unknown"
	}
}

// PriorityTypes returns the fixed subset of user types flagged for expedited
// commit: they are gathered before all regular types in every commit cycle.
func PriorityTypes() DataTypeSet {
	return NewDataTypeSet(DeviceInfo, Preferences)
}

// UserTypes returns every synchronizable type except Nigori.
func UserTypes() DataTypeSet {
	return AllDataTypes().Difference(NewDataTypeSet(Nigori))
}

// AllDataTypes returns the set of every known DataType, Nigori included.
func AllDataTypes() DataTypeSet {
	s := DataTypeSet{}
	for t := firstDataType; t <= lastDataType; t++ {
		s = s.Add(t)
	}
	return s
}
