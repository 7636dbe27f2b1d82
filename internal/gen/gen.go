// Package gen scans a Go package for action constants annotated with
// //keybind:keys directives and renders the default binding items for
// them. It backs the keybindgen command.
package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dkeyes/keybind/key"
)

// directivePrefix marks a doc comment line carrying default key patterns.
const directivePrefix = "keybind:keys"

// Action describes one annotated constant collected from a scanned package.
type Action struct {
	Name        string         // constant identifier
	ID          string         // action identifier: the constant's string value, or its name
	Keys        []string       // key patterns from the //keybind:keys directive
	Description string         // doc comment text with directives stripped
	Pos         token.Position // declaration site, for diagnostics
}

// Package holds the annotated actions collected from one scanned directory.
type Package struct {
	Name     string // Go package name, used for the generated file
	TypeName string // constant type the scan selected
	Actions  []Action
}

// Scan parses the Go package in dir and collects every constant of the
// named type that carries a //keybind:keys directive. Constants of the
// type without the directive are ignored, as are test files.
func Scan(dir, typeName string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading package directory: %w", err)
	}

	pkg := &Package{TypeName: typeName}
	fset := token.NewFileSet()

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if pkg.Name == "" {
			pkg.Name = file.Name.Name
		}
		pkg.Actions = append(pkg.Actions, collectFile(fset, file, typeName)...)
	}

	if len(pkg.Actions) == 0 {
		return nil, fmt.Errorf("no %s constants with //%s directives in %s", typeName, directivePrefix, dir)
	}
	return pkg, nil
}

// collectFile walks the const declarations of a single file. The type of
// a constant may be carried over from an earlier spec in the same block,
// so the walk tracks the last explicit type the way the language does.
func collectFile(fset *token.FileSet, file *ast.File, typeName string) []Action {
	var actions []Action
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}
		carried := ""
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			switch {
			case vs.Type != nil:
				carried = ""
				if ident, ok := vs.Type.(*ast.Ident); ok {
					carried = ident.Name
				}
			case len(vs.Values) > 0:
				// Untyped constant; it does not repeat the carried type.
				carried = ""
			}
			if carried != typeName {
				continue
			}
			keys, desc := parseDoc(vs.Doc)
			if len(keys) == 0 {
				continue
			}
			for i, ident := range vs.Names {
				actions = append(actions, Action{
					Name:        ident.Name,
					ID:          actionID(vs, i),
					Keys:        keys,
					Description: desc,
					Pos:         fset.Position(ident.Pos()),
				})
			}
		}
	}
	return actions
}

// parseDoc splits a constant's doc comment into directive patterns and
// the remaining description text.
func parseDoc(doc *ast.CommentGroup) ([]string, string) {
	if doc == nil {
		return nil, ""
	}
	var keys []string
	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if !strings.HasPrefix(text, directivePrefix) {
			continue
		}
		rest := text[len(directivePrefix):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		for _, p := range strings.Split(rest, ",") {
			if p = strings.TrimSpace(p); p != "" {
				keys = append(keys, p)
			}
		}
	}
	// Text strips comment markers and directive lines.
	desc := strings.Join(strings.Fields(doc.Text()), " ")
	return keys, desc
}

// actionID prefers the constant's string value over its identifier.
func actionID(vs *ast.ValueSpec, i int) string {
	if i < len(vs.Values) {
		if lit, ok := vs.Values[i].(*ast.BasicLit); ok && lit.Kind == token.STRING {
			if id, err := strconv.Unquote(lit.Value); err == nil && id != "" {
				return id
			}
		}
	}
	return vs.Names[i].Name
}

// Validate parses every collected pattern and checks action identifiers
// for uniqueness. It returns one error per problem so a caller can report
// them all at once.
func (p *Package) Validate() []error {
	var errs []error
	seen := make(map[string]string, len(p.Actions))
	for _, a := range p.Actions {
		if prev, ok := seen[a.ID]; ok {
			errs = append(errs, fmt.Errorf("%s: action %s: duplicate action id %q (already used by %s)", a.Pos, a.Name, a.ID, prev))
		} else {
			seen[a.ID] = a.Name
		}
		for _, pattern := range a.Keys {
			if _, err := key.ParseSequence(pattern); err != nil {
				errs = append(errs, fmt.Errorf("%s: action %s: invalid pattern %q: %v", a.Pos, a.Name, pattern, err))
			}
		}
	}
	return errs
}

// Render generates Go source declaring a <TypeName>Items function that
// returns the default binding items for the scanned constants, sorted by
// action identifier for stable output.
func (p *Package) Render() ([]byte, error) {
	actions := make([]Action, len(p.Actions))
	copy(actions, p.Actions)
	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })

	var buf bytes.Buffer
	buf.WriteString("// Code generated by keybindgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", p.Name)
	buf.WriteString("import \"github.com/dkeyes/keybind\"\n\n")
	fmt.Fprintf(&buf, "// %sItems returns the default key bindings declared on %s constants.\n", p.TypeName, p.TypeName)
	fmt.Fprintf(&buf, "func %sItems() map[string]keybind.Item {\n", p.TypeName)
	buf.WriteString("\treturn map[string]keybind.Item{\n")
	for _, a := range actions {
		fmt.Fprintf(&buf, "\t\t%q: {\n", a.ID)
		buf.WriteString("\t\t\tKeys: []string{")
		for i, k := range a.Keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%q", k)
		}
		buf.WriteString("},\n")
		if a.Description != "" {
			fmt.Fprintf(&buf, "\t\t\tDescription: %q,\n", a.Description)
		}
		buf.WriteString("\t\t},\n")
	}
	buf.WriteString("\t}\n}\n")
	return format.Source(buf.Bytes())
}
