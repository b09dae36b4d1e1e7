package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/inkpage/engine/convert"
	"github.com/pterm/pterm"
)

// REPL reads lines of text and previews them on the display canvas.
// A line ending in a backslash is continued on the next input line.
func REPL(conv *convert.Converter, withBar bool) error {
	repl, err := readline.New("ink > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	var text strings.Builder
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.HasSuffix(line, `\`) {
			text.WriteString(strings.TrimSuffix(line, `\`))
			text.WriteByte('\n')
			repl.SetPrompt("    > ")
			continue
		}
		text.WriteString(line)
		pages, err := conv.Text2Buffers(text.String())
		text.Reset()
		repl.SetPrompt("ink > ")
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if withBar {
			pages = conv.AddProgressBar(pages)
		}
		for i, page := range pages {
			pterm.Info.Printfln("page %d of %d", i+1, len(pages))
			printPage(page, conv.Config().Width())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}
