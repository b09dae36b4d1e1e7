/*
Package resources resolves images and fonts for a conversion.

As resource loading may be a time-consuming task, functions in this
package work in an async/await fashion by returning a promise.
Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed. Failures are reported by the promise; there is
no retry.

Images are prepared by an ImageProcessor, which decodes a file, fits it into
the canvas and converts it to grayscale. The default processor is backed by
github.com/disintegration/imaging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'inkpage.resources'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.resources")
}
