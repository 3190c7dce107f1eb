package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/rmlines"
	"github.com/akeil/rmlines/pkg/render"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

type settings struct {
	input     string
	output    string
	format    string
	noCrop    bool
	colors    string
	highlight string
	debug     bool
}

func main() {
	app := kingpin.New("rmlines", "Convert reMarkable lines files to SVG, XFDF, PNG or PDF")
	app.HelpFlag.Short('h')

	var s settings
	logLevel := app.Flag("log-level", "Log level (debug, info, warning, error)").
		Envar("RMLINES_LOG_LEVEL").Default("warning").String()

	convert := app.Command("convert", "Convert a lines file or notebook").Default()
	convert.Arg("input", "Lines file or notebook directory, stdin if omitted").StringVar(&s.input)
	convert.Flag("output", "Output file, stdout if omitted").Short('o').
		Envar("RMLINES_OUTPUT").StringVar(&s.output)
	convert.Flag("to", "Output format (svg, xfdf, png, pdf), derived from the output file if omitted").Short('t').
		Envar("RMLINES_FORMAT").EnumVar(&s.format, "svg", "xfdf", "png", "pdf")
	convert.Flag("no-crop", "Don't crop the page to fit the content").Short('n').
		Envar("RMLINES_NO_CROP").BoolVar(&s.noCrop)
	convert.Flag("colors", "Colors for black, gray and white per layer, like 'black,gray,white;red,orange,white'").Short('c').
		Envar("RMLINES_COLORS").Default(render.DefaultColors).StringVar(&s.colors)
	convert.Flag("highlight", "Color for highlight annotations").
		Envar("RMLINES_HIGHLIGHT").Default(render.DefaultHighlight).StringVar(&s.highlight)
	convert.Flag("debug-dump", "Add the decoded values as tooltips to SVG output").Short('d').
		Envar("RMLINES_DEBUG_DUMP").BoolVar(&s.debug)

	info := app.Command("info", "Show the content of a lines file or notebook")
	info.Arg("input", "Lines file or notebook directory, stdin if omitted").StringVar(&s.input)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	rmlines.SetLogLevel(*logLevel)

	var err error
	switch command {
	case convert.FullCommand():
		err = doConvert(s)
	case info.FullCommand():
		err = doInfo(s)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v Error: %v\n", crossmark, err)
		os.Exit(1)
	}
	os.Exit(0)
}
