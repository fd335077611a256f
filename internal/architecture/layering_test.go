package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "technova/internal/modules/"

type importRef struct {
	file string
	path string
}

// collectImports parses every non-test Go file under root.
func collectImports(t *testing.T, root string) []importRef {
	t.Helper()
	fset := token.NewFileSet()
	var refs []importRef
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			refs = append(refs, importRef{file: filepath.ToSlash(path), path: strings.Trim(imp.Path.Value, `"`)})
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return refs
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	for _, ref := range collectImports(t, filepath.Join("..", "modules")) {
		module := moduleName(ref.file)
		layer := detectLayer(ref.file)
		if module == "" || layer == "" {
			continue
		}
		if strings.HasPrefix(ref.path, "technova/internal/ui") || strings.HasPrefix(ref.path, "technova/internal/bootstrap") {
			t.Errorf("%s (%s) reaches outward: %s", ref.file, layer, ref.path)
			continue
		}
		if !strings.HasPrefix(ref.path, modulesPrefix) {
			continue
		}
		if violatesLayerRule(module, layer, ref.path) {
			t.Errorf("forbidden import in %s (%s): %s", ref.file, layer, ref.path)
		}
	}
}

// The dashboard talks to modules through their CLI handlers, so views only
// ever need the DTO packages.
func TestUIImportsOnlyModuleDTOs(t *testing.T) {
	t.Parallel()
	for _, ref := range collectImports(t, filepath.Join("..", "ui")) {
		if strings.HasPrefix(ref.path, modulesPrefix) && !isDTO(ref.path) {
			t.Errorf("%s imports %s; ui may only use module dto packages", ref.file, ref.path)
		}
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, importPath string) bool {
	// Modules are independent engines and never import each other.
	if !strings.HasPrefix(importPath, modulesPrefix+module+"/") {
		return true
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/")
	case "domain", "dto":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/") || strings.Contains(importPath, "/port/")
	case "port/in", "port/out":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/")
	default:
		return false
	}
}
