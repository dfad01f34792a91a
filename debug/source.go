//go:build !nodebug

package debug

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"sync"
)

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

var sources struct {
	sync.Mutex
	files map[string]*sourceFile
}

// loadSource parses a file once, and caches the result.
// Files that can't be read or parsed are cached as nil, e.g. when a binary is built with -trimpath.
func loadSource(path string) *sourceFile {
	sources.Lock()
	defer sources.Unlock()
	if sf, ok := sources.files[path]; ok {
		return sf
	}
	if sources.files == nil {
		sources.files = map[string]*sourceFile{}
	}
	var sf *sourceFile
	if src, err := os.ReadFile(path); err == nil {
		fset := token.NewFileSet()
		if file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution); err == nil {
			sf = &sourceFile{fset: fset, file: file, src: src}
		}
	}
	sources.files[path] = sf
	return sf
}

// conditionText finds the calls to api that span line, and returns the source text of their first argument.
// Stack frames don't carry a column, so several calls to api on one line can't be told apart.
// Their conditions are all returned in source order, separated by "; ".
func conditionText(path string, line int, api string) (string, bool) {
	sf := loadSource(path)
	if sf == nil {
		return "", false
	}
	var conds []string
	ast.Inspect(sf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if line < sf.fset.Position(call.Pos()).Line || line > sf.fset.Position(call.End()).Line {
			return false
		}
		if len(call.Args) > 0 && calledName(call.Fun) == api {
			cond := call.Args[0]
			if lit, ok := cond.(*ast.FuncLit); ok {
				cond = returnedExpr(lit)
			}
			conds = append(conds, sf.text(cond))
			return false
		}
		return true
	})
	if len(conds) == 0 {
		return "", false
	}
	return strings.Join(conds, "; "), true
}

func calledName(fun ast.Expr) string {
	switch fun := fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.ParenExpr:
		return calledName(fun.X)
	}
	return ""
}

// returnedExpr unwraps 'func() bool { return expr }' to expr.
// Function literals with more involved bodies are returned as-is.
func returnedExpr(lit *ast.FuncLit) ast.Expr {
	if lit.Body == nil || len(lit.Body.List) != 1 {
		return lit
	}
	ret, ok := lit.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return lit
	}
	return ret.Results[0]
}

func (sf *sourceFile) text(expr ast.Expr) string {
	tf := sf.fset.File(expr.Pos())
	start, end := tf.Offset(expr.Pos()), tf.Offset(expr.End())
	text := string(sf.src[start:end])
	if !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, " ")
}
