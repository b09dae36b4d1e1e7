/*
Package canvas holds the geometry of a monochrome display canvas.

A canvas is measured in pixels. Its width has to be a multiple of 8, as rows
of pixels are transmitted as whole bytes. Text is laid out on a grid of
character cells of FontSize × FontSize pixels; whatever remains of width and
height after fitting the grid is distributed as margins.

A Config is immutable after construction and may be shared between
concurrent conversions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canvas

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.core'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.core")
}
