// The kagesvg command synthesizes one glyph's polygon outline from a
// component dictionary and writes it as SVG or EPS to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/goki/kage/component"
	"github.com/goki/kage/kage"
)

var (
	dictFlag   = flag.String("dict", "", "path to a pipe-delimited component dictionary")
	nameFlag   = flag.String("name", "", "component name to synthesize")
	styleFlag  = flag.String("style", "gothic", "typeface style: gothic or ming")
	formatFlag = flag.String("format", "svg", "output format: svg or eps")
	curveFlag  = flag.Bool("curve", false, "emit each polygon as an SVG <path> (Q commands for off-curve points) instead of a <polygon>")
)

func main() {
	flag.Parse()

	log.SetPrefix("kagesvg: ")
	log.SetFlags(0)

	if *dictFlag == "" || *nameFlag == "" {
		pterm.Error.Println("both -dict and -name are required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*dictFlag)
	if err != nil {
		pterm.Error.Printfln("opening dictionary: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	store, err := component.LoadDictionary(f)
	if err != nil {
		pterm.Error.Printfln("loading dictionary: %v", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("loaded %d components from %s", store.Len(), *dictFlag)

	var style kage.Style
	switch *styleFlag {
	case "ming":
		style = kage.Ming
	case "gothic":
		style = kage.Gothic
	default:
		pterm.Error.Printfln("unknown style %q (want gothic or ming)", *styleFlag)
		os.Exit(2)
	}

	builder := kage.New(store)
	set := builder.Build(*nameFlag, style)

	for _, d := range builder.Diagnostics {
		switch d.Kind {
		case kage.MissingComponent:
			pterm.Warning.Printfln("missing component %q", d.Name)
		case kage.UnknownStrokeCode:
			pterm.Warning.Printfln("unknown stroke code in %q: %s", d.Name, d.Record)
		case kage.CurveFitFailure:
			pterm.Warning.Printfln("curve fit failed while drawing %q", d.Name)
		}
	}

	pterm.Success.Printfln("%q: %d polygons", *nameFlag, len(set.Array()))

	switch *formatFlag {
	case "svg":
		fmt.Println(set.GenerateSVG(*curveFlag))
	case "eps":
		fmt.Println(set.GenerateEPS(time.Now()))
	default:
		pterm.Error.Printfln("unknown format %q (want svg or eps)", *formatFlag)
		os.Exit(2)
	}
}
