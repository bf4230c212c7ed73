package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestNoHexFormatting(t *testing.T) {
	pkgs := loadLibrary(t, packages.NeedName|packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedFiles)

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				formatIdx, ok := formatIndex(obj.Pkg().Path(), obj.Name())
				if !ok || len(call.Args) <= formatIdx {
					return true
				}

				lit, ok := call.Args[formatIdx].(*ast.BasicLit)
				if !ok || lit.Kind != token.STRING {
					return true
				}

				value, err := strconv.Unquote(lit.Value)
				if err != nil {
					return true
				}

				if containsHexVerb(value) {
					pos := pkg.Fset.Position(lit.Pos())
					findings = append(findings, fmt.Sprintf("%s: avoid %%x formatting; key material prints as decimal or not at all", pos))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("formatting policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func formatIndex(pkgPath, name string) (int, bool) {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Errorf", "Printf", "Sprintf":
			return 0, true
		case "Fprintf":
			return 1, true
		}
	case "log":
		switch name {
		case "Printf", "Fatalf", "Panicf":
			return 0, true
		}
	}
	return 0, false
}

// containsHexVerb reports whether s holds a %x or %X directive. Flags,
// width and precision may sit between the percent sign and the verb; an
// escaped "%%" is not a directive.
func containsHexVerb(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		i++
		for i < len(s) && strings.IndexByte("+-# 0123456789.*[]", s[i]) >= 0 {
			i++
		}
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			return true
		}
	}
	return false
}

func TestContainsHexVerb(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"%x", true},
		{"d=%X", true},
		{"%d and %s", false},
		{"%%", false},
		{"%%x", false},
		{"100%%x%d", false},
		{"%%%x", true},
		{"%08x", true},
		{"%#X", true},
		{"%-4.2x", true},
		{"trailing %", false},
	}
	for _, tt := range tests {
		if got := containsHexVerb(tt.in); got != tt.want {
			t.Errorf("containsHexVerb(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
