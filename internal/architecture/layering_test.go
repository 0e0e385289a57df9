package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const modulesPrefix = "bikeshare/internal/modules/"

// layers lists the layer directories of a module, most specific first.
var layers = []string{"adapter/in", "adapter/out", "port/in", "port/out", "usecase", "service", "domain", "dto"}

// forbidden maps a layer to the layers of its own module it must not import.
var forbidden = map[string][]string{
	"domain":     {"adapter/in", "adapter/out", "usecase", "service", "port/in", "port/out", "dto"},
	"service":    {"adapter/in", "adapter/out", "usecase"},
	"usecase":    {"adapter/in", "adapter/out"},
	"adapter/in": {"adapter/out", "usecase", "service", "domain", "port/out"},
	"port/out":   {"adapter/in", "adapter/out", "usecase", "service"},
	"port/in":    {"adapter/in", "adapter/out", "usecase", "service"},
}

// crossModule lists the layers another module may import.
var crossModule = []string{"domain", "dto", "port/in"}

type importRef struct {
	module string
	layer  string
}

func parseRef(path string) (importRef, bool) {
	rest, ok := strings.CutPrefix(path, modulesPrefix)
	if !ok {
		return importRef{}, false
	}
	module, sub, _ := strings.Cut(rest, "/")
	for _, layer := range layers {
		if sub == layer || strings.HasPrefix(sub, layer+"/") {
			return importRef{module: module, layer: layer}, true
		}
	}
	return importRef{module: module}, true
}

func goImports(t *testing.T, root string, visit func(file string, imports []string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		imports := make([]string, 0, len(file.Imports))
		for _, imp := range file.Imports {
			imports = append(imports, strings.Trim(imp.Path.Value, `"`))
		}
		visit(filepath.ToSlash(path), imports)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestModuleLayerImports(t *testing.T) {
	t.Parallel()
	root := filepath.Join("..", "modules")
	goImports(t, root, func(file string, imports []string) {
		rel := strings.TrimPrefix(file, filepath.ToSlash(root)+"/")
		self, ok := parseRef(modulesPrefix + rel)
		if !ok || self.layer == "" {
			return
		}
		for _, imp := range imports {
			ref, ok := parseRef(imp)
			if !ok {
				continue
			}
			if ref.module != self.module {
				if !slices.Contains(crossModule, ref.layer) {
					t.Errorf("%s (%s) imports %s layer of module %s: %s", file, self.layer, ref.layer, ref.module, imp)
				}
				continue
			}
			if slices.Contains(forbidden[self.layer], ref.layer) {
				t.Errorf("%s (%s) must not import its own %s layer: %s", file, self.layer, ref.layer, imp)
			}
		}
	})
}

func TestUIImportsOnlyDTOs(t *testing.T) {
	t.Parallel()
	goImports(t, filepath.Join("..", "ui"), func(file string, imports []string) {
		for _, imp := range imports {
			if ref, ok := parseRef(imp); ok && ref.layer != "dto" {
				t.Errorf("%s reaches past module DTOs: %s", file, imp)
			}
		}
	})
}
