package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	treedec "github.com/treedec/treedec"
	jsonsrc "github.com/treedec/treedec/source/json"
	yamlsrc "github.com/treedec/treedec/source/yaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "treedec CLI\n\nUsage:\n  treedec inspect [-format json|yaml] FILE\n\nNotes:\n  - inspect parses the input into a value tree and prints every path with its kind.")
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "json", "input format: json or yaml")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	name := fs.Arg(0)

	data, err := os.ReadFile(name)
	if err != nil {
		fatalf("read %s: %v", name, err)
	}

	var root treedec.Value
	switch strings.ToLower(format) {
	case "json":
		root, err = jsonsrc.Bytes(data)
	case "yaml", "yml":
		root, err = yamlsrc.Bytes(data)
	default:
		fatalf("unknown format %q", format)
	}
	if err != nil {
		fatalf("parse: %v", err)
	}

	walk(treedec.NewDecoder(root))
}

// walk prints the JSON Pointer and kind of every node, children in
// deterministic order. The decoder chain carries the path.
func walk(d *treedec.Decoder) {
	fmt.Printf("%s\t%s\n", d.Path(), d.Value().Kind())
	switch d.Value().Kind() {
	case treedec.KindKeyed:
		kc, err := d.Keyed()
		if err != nil {
			fatalf("walk: %v", err)
		}
		for _, k := range kc.Keys() {
			cd, err := kc.NestedDecoder(k)
			if err != nil {
				fatalf("walk: %v", err)
			}
			walk(cd)
		}
	case treedec.KindOrdered:
		oc, err := d.Ordered()
		if err != nil {
			fatalf("walk: %v", err)
		}
		for !oc.IsAtEnd() {
			cd, err := oc.NextDecoder()
			if err != nil {
				fatalf("walk: %v", err)
			}
			walk(cd)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "treedec: "+format+"\n", args...)
	os.Exit(1)
}
