/*
Package frame assembles pages of pixels.

A page is the content of one display refresh. It is framed by a top and a
bottom margin of white pixel rows; between them go the rasterized lines of
text. The result is one bit string of Width × Height bits, in output
polarity, ready to be packed into bytes.

Pages are independent of each other. AssembleGrid renders them
concurrently, as fonts and canvas configurations are read-only.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.frame'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.frame")
}
