// keybindgen generates default key binding items from action constants
// annotated with //keybind:keys directives.
//
// Given a package that declares its actions as typed constants:
//
//	type Action string
//
//	const (
//		// Save writes the buffer to disk.
//		//keybind:keys ctrl-s
//		ActionSave Action = "save"
//	)
//
// running keybindgen -type Action writes action_keybind_gen.go declaring
// an ActionItems function that returns the matching keybind.Item map.
// It is meant to be driven from go:generate:
//
//	//go:generate go run github.com/dkeyes/keybind/cmd/keybindgen -type Action
//
// Invalid patterns fail the run with file:line diagnostics so a stale
// directive breaks the build instead of the binding table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkeyes/keybind/internal/gen"
)

func main() {
	log.SetPrefix("keybindgen: ")
	log.SetFlags(0)

	typeName := flag.String("type", "", "constant type to scan for (required)")
	dir := flag.String("dir", ".", "package directory to scan")
	out := flag.String("o", "", "output file (default <type>_keybind_gen.go in the scanned directory)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: keybindgen -type T [-dir directory] [-o output.go]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *typeName == "" {
		flag.Usage()
		os.Exit(2)
	}

	pkg, err := gen.Scan(*dir, *typeName)
	if err != nil {
		log.Fatal(err)
	}

	if errs := pkg.Validate(); len(errs) > 0 {
		for _, err := range errs {
			log.Print(err)
		}
		os.Exit(1)
	}

	code, err := pkg.Render()
	if err != nil {
		log.Fatalf("rendering %s items: %v", *typeName, err)
	}

	path := *out
	if path == "" {
		path = filepath.Join(*dir, strings.ToLower(*typeName)+"_keybind_gen.go")
	}
	if err := os.WriteFile(path, code, 0644); err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
	log.Printf("wrote %d actions to %s", len(pkg.Actions), path)
}
