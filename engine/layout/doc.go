/*
Package layout arranges text on a fixed grid of character cells.

Overview

Layout is done in three steps:

1. Normalization: text is composed (NFC) and printable ASCII is replaced by
its full-width form, so that every character occupies one square cell.

2. Wrapping: text is split into lines at hard line breaks, and lines longer
than a row are wrapped. Closing ideographic punctuation (。、) must not start
a line (kinsoku shori), be it after a wrap or after a hard line break; if it
would, the last cell of the preceding line is pushed forward to accompany it.
After a hard line break this usually is a padding blank.

3. Pagination: lines are padded with ideographic spaces and grouped into pages.

The result is a Grid: pages of lines of cells, every line exactly a row long,
every page exactly a column long.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.layout'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.layout")
}
