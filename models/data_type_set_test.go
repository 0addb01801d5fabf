package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeSet_SetOperations(t *testing.T) {
	a := NewDataTypeSet(Nigori, Preferences, Bookmarks)
	b := NewDataTypeSet(Preferences, Passwords)

	assert.Equal(t, NewDataTypeSet(Nigori, Preferences, Bookmarks, Passwords), a.Union(b))
	assert.Equal(t, NewDataTypeSet(Preferences), a.Intersect(b))
	assert.Equal(t, NewDataTypeSet(Nigori, Bookmarks), a.Difference(b))
}

func TestDataTypeSet_AddRemoveHas(t *testing.T) {
	s := DataTypeSet{}
	assert.True(t, s.Empty())

	s = s.Add(History).Add(Nigori)
	assert.True(t, s.Has(History))
	assert.True(t, s.Has(Nigori))
	assert.False(t, s.Has(Autofill))
	assert.Equal(t, 2, s.Len())

	s = s.Remove(History)
	assert.False(t, s.Has(History))
	assert.Equal(t, 1, s.Len())
}

func TestDataTypeSet_SliceIsAscending(t *testing.T) {
	s := NewDataTypeSet(History, Nigori, Bookmarks)
	assert.Equal(t, []DataType{Nigori, Bookmarks, History}, s.Slice())
}

func TestDataTypeSet_String(t *testing.T) {
	assert.Equal(t, "{nigori, preferences}", NewDataTypeSet(Preferences, Nigori).String())
	assert.Equal(t, "{}", DataTypeSet{}.String())
}

func TestPriorityTypes_AreUserTypes(t *testing.T) {
	assert.False(t, PriorityTypes().Has(Nigori))
	assert.True(t, UserTypes().Intersect(PriorityTypes()).Len() == PriorityTypes().Len())
	assert.True(t, AllDataTypes().Has(Nigori))
}

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "nigori", Nigori.String())
	assert.Equal(t, "device_info", DeviceInfo.String())
	assert.Equal(t, "unknown", DataType(99).String())
}
