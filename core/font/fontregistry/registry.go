package fontregistry

import (
	"sort"
	"sync"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding information about loaded glyph fonts.
type Registry struct {
	sync.Mutex
	fonts map[string]font.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
// Conversions do not consult it; clients resolve a font once and hand it to
// a converter.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]font.Font),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f font.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	normalizedName := font.NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Name(), normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns the font stored under name.
//
// If no such font has been stored, Font returns the fallback font, together
// with an error of code core.EMISSING.
func (fr *Registry) Font(name string) (font.Font, error) {
	normalizedName := font.NormalizeFontname(name)
	tracer().Debugf("registry searches for font %s", normalizedName)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[normalizedName]; ok {
		tracer().Infof("registry found font %s", normalizedName)
		return f, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	return font.Fallback(), core.Error(core.EMISSING, "font %s not found in registry", name)
}

// Names returns the sorted list of registered font names.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Names() {
		fr.Lock()
		f := fr.fonts[k]
		fr.Unlock()
		tracer().Infof("font [%s] = %v", k, f.Name())
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
