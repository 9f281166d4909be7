package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntriesOf(t *testing.T) {
	entries := EntriesOf([]any{
		"English",
		map[string]any{"title": "French"},
		42.0, // dropped
		nil,  // dropped
	})

	assert.Len(t, entries, 2)
	assert.Equal(t, StringEntry("English"), entries[0])
	assert.Equal(t, MapEntry{"title": "French"}, entries[1])
}

func TestMapEntryFirst(t *testing.T) {
	m := MapEntry{"name": "AWS Certified", "title": "", "year": 2020.0}

	assert.Equal(t, "AWS Certified", m.First("title", "name"))
	assert.Equal(t, "2020", m.First("missing", "year"))
	assert.Equal(t, "", m.First("missing", "absent"))
}

func TestMapEntryList(t *testing.T) {
	m := MapEntry{
		"positions": []any{
			map[string]any{"title": "Engineer"},
			"intern",
		},
		"scalar": "not a list",
	}

	positions := m.List("positions")
	assert.Len(t, positions, 2)
	assert.Nil(t, m.List("scalar"))
	assert.Nil(t, m.List("missing"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "hello", Stringify("hello"))
	assert.Equal(t, "2020", Stringify(2020.0))
	assert.Equal(t, "3.5", Stringify(3.5))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "", Stringify([]any{"x"}))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Name: Ada Lovelace")
	b := Fingerprint("Name: Ada Lovelace")
	c := Fingerprint("Name: Alan Turing")

	assert.Equal(t, a, b, "identical content produces identical fingerprints")
	assert.NotEqual(t, a, c)
	assert.NotZero(t, Fingerprint(""))
}
