package fontregistry

import (
	"testing"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryStoreAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	first := font.NewTable("first", nil)
	second := font.NewTable("second", nil)
	fr.StoreFont("fonts/Shinonome 12.json", first)
	fr.StoreFont("shinonome_12", second) // same key, must not override
	f, err := fr.Font("Shinonome 12")
	require.NoError(t, err)
	assert.Same(t, first, f)
	assert.Equal(t, []string{"shinonome_12"}, fr.Names())
	fr.LogFontList()
}

func TestRegistryFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont("nil", nil)
	f, err := fr.Font("unknown")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Same(t, font.Fallback(), f)
	assert.Same(t, GlobalRegistry(), GlobalRegistry())
}
