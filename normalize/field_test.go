package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewsearch/brew/core"
)

func TestParseFieldArray(t *testing.T) {
	f := ParseField(`["English", {"title": "French"}]`)

	require.Len(t, f.Entries, 2)
	assert.Equal(t, core.StringEntry("English"), f.Entries[0])
	assert.Equal(t, core.MapEntry{"title": "French"}, f.Entries[1])
	assert.Empty(t, f.Text)
}

func TestParseFieldEmpty(t *testing.T) {
	assert.Equal(t, Field{}, ParseField(""))
	assert.Equal(t, Field{}, ParseField("null"))
}

func TestParseFieldMalformedDegradesToText(t *testing.T) {
	f := ParseField(`[{"broken": }`)

	assert.Nil(t, f.Entries)
	assert.Equal(t, `[{"broken": }`, f.Text)
}

func TestParseFieldScalarDegradesToText(t *testing.T) {
	f := ParseField(`just   a plain   string`)

	assert.Nil(t, f.Entries)
	assert.Equal(t, "just a plain string", f.Text, "degraded text is cleaned")
}
