package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AntonioND/nds-rtt-example/tools/texture"
)

const usageString = `ndsgo is a tool for preparing assets of the DS hardware model.

Usage:

	%s <command> [arguments]

The commands are:

	texture  convert images to texture files
	inspect  print the format of texture files
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "texture":
		texture.Main(flag.Args())
	case "inspect":
		texture.Inspect(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
