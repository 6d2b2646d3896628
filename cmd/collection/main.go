package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	collection "github.com/reoring/collection"
)

func main() {
	var format string
	var indent string
	var mergeFile string
	var reverse bool
	flag.StringVar(&format, "format", "json", "output format: json or yaml")
	flag.StringVar(&indent, "indent", "", "indent string for JSON output")
	flag.StringVar(&mergeFile, "merge", "", "JSON file to merge over the input (incoming wins)")
	flag.BoolVar(&reverse, "reverse", false, "reverse entry order before output")
	flag.Usage = usage
	flag.Parse()

	data, err := readInput(flag.Arg(0))
	if err != nil {
		fatalf("reading input: %v", err)
	}
	c, err := collection.FromJSON(data)
	if err != nil {
		fatalf("decoding input: %v", err)
	}

	if mergeFile != "" {
		md, err := os.ReadFile(mergeFile)
		if err != nil {
			fatalf("reading merge file: %v", err)
		}
		mc, err := collection.FromJSON(md)
		if err != nil {
			fatalf("decoding merge file: %v", err)
		}
		if _, err := c.Merge(mc); err != nil {
			fatalf("merge: %v", err)
		}
	}
	if reverse {
		c.Reverse()
	}

	var out []byte
	switch format {
	case "json":
		out, err = c.ToJSON(collection.EncodeOpt{Indent: indent})
	case "yaml":
		out, err = c.ToYAML()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatalf("encoding output: %v", err)
	}
	os.Stdout.Write(out)
	if format == "json" {
		fmt.Println()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "collection CLI\n\nUsage:\n  collection [-format json|yaml] [-indent s] [-reverse] [-merge file.json] [input.json]\n\nReads a JSON document (stdin when no input file is given) into an ordered\ncollection, applies the requested transformations, and re-emits it.")
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
