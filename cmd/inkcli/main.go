/*
Command inkcli converts text or an image into page buffers for an e-paper display.

Usage:

    inkcli -width 296 -height 128 -text "こんにちは。" -preview
    inkcli -width 296 -height 128 -in story.txt -progress -out story.bin
    inkcli -width 200 -height 200 -image photo.jpg -out photo.bin
    inkcli -width 296 -height 128 -font shinonome12.bdf -interactive

Page buffers are written one after the other to the output file, each of
them width × height bits (plus a progress bar of 12 rows, if requested).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/inkpage/core/locate/resources"
	"github.com/npillmayer/inkpage/engine/convert"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'inkpage.convert'
func tracer() tracing.Trace {
	return tracing.Select("inkpage.convert")
}

var traceKeys = []string{
	"inkpage.core", "inkpage.fonts", "inkpage.resources", "inkpage.layout",
	"inkpage.raster", "inkpage.frame", "inkpage.progress", "inkpage.quantize",
	"inkpage.convert",
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	width := flag.Int("width", 296, "Display width in pixels, a multiple of 8")
	height := flag.Int("height", 128, "Display height in pixels")
	margin := flag.String("margin", "", "Margins as top,left,right,bottom (default: centered)")
	fontname := flag.String("font", "", "Glyph font: registered name, file path or system font")
	text := flag.String("text", "", "Text to convert")
	infile := flag.String("in", "", "File to read text from ('-' for stdin)")
	imgfile := flag.String("image", "", "Image file to convert")
	withBar := flag.Bool("progress", false, "Add a progress bar below each page")
	outfile := flag.String("out", "", "File to write page buffers to")
	preview := flag.Bool("preview", false, "Print pages to the terminal")
	interactive := flag.Bool("interactive", false, "Read lines of text interactively")
	flag.Parse()

	// set up logging
	if err := initTracing(*tlevel); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to inkpage") // colored welcome message
	//
	cfg, err := makeConfig(*width, *height, *margin)
	if err != nil {
		fail(err, 2)
	}
	f := loadFont(*fontname)
	conv := convert.New(cfg, f)
	pterm.Info.Printfln("%v, font %s", cfg, f.Name())
	//
	if *interactive {
		if err := REPL(conv, *withBar); err != nil {
			fail(err, 3)
		}
		return
	}
	var pages [][]byte
	if *imgfile != "" {
		buf, err := conv.Image2Buffer(*imgfile)
		if err != nil {
			fail(err, 4)
		}
		pages = [][]byte{buf}
	} else {
		input, err := readText(*text, *infile)
		if err != nil {
			fail(err, 4)
		}
		if pages, err = conv.Text2Buffers(input); err != nil {
			fail(err, 5)
		}
	}
	if *withBar {
		pages = conv.AddProgressBar(pages)
	}
	if *preview {
		for i, page := range pages {
			pterm.Info.Printfln("page %d of %d", i+1, len(pages))
			printPage(page, cfg.Width())
		}
	}
	if *outfile != "" {
		if err := os.WriteFile(*outfile, bytes.Join(pages, nil), 0644); err != nil {
			fail(core.WrapError(err, core.EINVALID, "cannot write %s", *outfile), 6)
		}
		pterm.Success.Printfln("%d page(s) written to %s", len(pages), *outfile)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func fail(err error, exitcode int) {
	tracer().Errorf(err.Error())
	pterm.Error.Println(core.UserMessage(err))
	os.Exit(exitcode)
}

func makeConfig(width, height int, margin string) (*canvas.Config, error) {
	if margin == "" {
		return canvas.New(width, height, nil)
	}
	parts := strings.Split(margin, ",")
	if len(parts) != 4 {
		return nil, core.KindError(core.ConfigurationError, canvas.ErrInvalidMargin, core.EINVALID,
			"margin must be given as top,left,right,bottom: %q", margin)
	}
	var m [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, core.KindError(core.ConfigurationError, canvas.ErrInvalidMargin, core.EINVALID,
				"margin %q is not a number", p)
		}
		m[i] = n
	}
	return canvas.New(width, height, &canvas.Margin{Top: m[0], Left: m[1], Right: m[2], Bottom: m[3]})
}

func loadFont(name string) font.Font {
	if name == "" {
		return font.Fallback()
	}
	f, err := resources.ResolveFont(name).Font()
	if err != nil {
		pterm.Warning.Printfln("using fallback font: %s", core.UserMessage(err))
	}
	return f
}

func readText(text, infile string) (string, error) {
	if infile == "" {
		return text, nil
	}
	var r io.Reader = os.Stdin
	if infile != "-" {
		f, err := os.Open(infile)
		if err != nil {
			return "", core.WrapError(err, core.EMISSING, "cannot open %s", infile)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot read %s", infile)
	}
	return string(b), nil
}

// printPage prints a page buffer as block characters, dark pixels as ink.
// Rows are paired into half-block characters.
func printPage(page []byte, width int) {
	s := bits.Unpack(page)
	rows := len(s) / width
	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		sb.Reset()
		for x := 0; x < width; x++ {
			upper := s[y*width+x] == bits.Black
			lower := y+1 < rows && s[(y+1)*width+x] == bits.Black
			switch {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		pterm.Println(sb.String())
	}
}
