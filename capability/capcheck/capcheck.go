// Package capcheck reports copies and moves of types whose capability declarators don't allow them.
package capcheck

import (
	"flag"
	"github.com/saylorsolutions/diag/capability"
	"go/ast"
	"go/token"
	"go/types"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
	"strings"
)

// Analyzer creates the capcheck analyzer.
func Analyzer() *analysis.Analyzer {
	flagSet := flag.NewFlagSet("capcheck", flag.ExitOnError)
	skip := flagSet.String("skip-pkg", "", "comma separated package path fragments to skip")

	return &analysis.Analyzer{
		Name: "capcheck",
		Doc:  "reports copies and moves of types whose capability declarators don't allow them",
		URL:  "https://pkg.go.dev/github.com/saylorsolutions/diag/capability",
		Run: func(pass *analysis.Pass) (any, error) {
			for _, s := range strings.Split(*skip, ",") {
				s = strings.TrimSpace(s)
				if len(s) > 0 && strings.Contains(pass.Pkg.Path(), s) {
					return nil, nil
				}
			}
			c := &checker{pass: pass, resolver: NewResolver()}
			c.run(pass.ResultOf[inspect.Analyzer].(*inspector.Inspector))
			return nil, nil
		},
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Flags:    *flagSet,
	}
}

type checker struct {
	pass     *analysis.Pass
	resolver *Resolver
}

func (c *checker) run(insp *inspector.Inspector) {
	nodeFilter := []ast.Node{
		(*ast.TypeSpec)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.CallExpr)(nil),
		(*ast.ReturnStmt)(nil),
		(*ast.CompositeLit)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.SendStmt)(nil),
		(*ast.SelectorExpr)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.TypeSpec:
			c.checkTypeSpec(n)
		case *ast.AssignStmt:
			c.checkAssign(n)
		case *ast.ValueSpec:
			if len(n.Names) != len(n.Values) {
				return
			}
			for i, val := range n.Values {
				if n.Names[i].Name != "_" {
					c.checkInit(val)
				}
			}
		case *ast.CallExpr:
			c.checkCall(n)
		case *ast.ReturnStmt:
			for _, res := range n.Results {
				c.checkInit(res)
			}
		case *ast.CompositeLit:
			for _, elt := range n.Elts {
				if kv, ok := elt.(*ast.KeyValueExpr); ok {
					elt = kv.Value
				}
				c.checkInit(elt)
			}
		case *ast.RangeStmt:
			c.checkRange(n)
		case *ast.SendStmt:
			c.checkInit(n.Value)
		case *ast.SelectorExpr:
			c.checkMethodValue(n)
		}
	})
}

// checkTypeSpec reports Default declarators that conflict with a No declarator, or that a field makes ineffective.
func (c *checker) checkTypeSpec(spec *ast.TypeSpec) {
	obj := c.pass.TypesInfo.Defs[spec.Name]
	if obj == nil {
		return
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return
	}
	info := c.resolver.inspect(obj.Type(), st)
	for _, mk := range info.markers {
		if mk.dcl.Forbid {
			continue
		}
		for _, op := range capability.AllOps {
			if !mk.dcl.Ops.Has(op) {
				continue
			}
			if name, ok := info.decl.Forbids(op); ok {
				c.pass.Reportf(mk.field.Pos(), "%s conflicts with %s on %s", mk.dcl.Name, name, spec.Name.Name)
				break
			}
			if field, ok := blockingField(info.fields, op); ok {
				c.pass.Reportf(mk.field.Pos(), "%s on %s has no effect: field %s is not %s", mk.dcl.Name, spec.Name.Name, field, op.Adjective())
				break
			}
		}
	}
}

func blockingField(fields []capability.Field, op capability.Op) (string, bool) {
	for _, f := range fields {
		if !f.Matrix.Allows(op) {
			return f.Name, true
		}
	}
	return "", false
}

func (c *checker) checkAssign(stmt *ast.AssignStmt) {
	if stmt.Tok != token.DEFINE && stmt.Tok != token.ASSIGN {
		return
	}
	if len(stmt.Lhs) != len(stmt.Rhs) {
		return
	}
	for i, lhs := range stmt.Lhs {
		ident, isIdent := lhs.(*ast.Ident)
		if isIdent && ident.Name == "_" {
			continue
		}
		if stmt.Tok == token.DEFINE && isIdent && c.pass.TypesInfo.Defs[ident] != nil {
			c.checkInit(stmt.Rhs[i])
			continue
		}
		c.checkOverwrite(stmt.Rhs[i])
	}
}

// checkInit checks an expression that initializes a new location.
func (c *checker) checkInit(expr ast.Expr) {
	if t, ok := c.moveCall(expr); ok {
		c.require(expr, t, capability.MoveCtor)
		return
	}
	if t, ok := c.copiedType(expr); ok {
		c.require(expr, t, capability.CopyCtor)
	}
}

// checkOverwrite checks an expression that is assigned to an existing location.
func (c *checker) checkOverwrite(expr ast.Expr) {
	if t, ok := c.moveCall(expr); ok {
		c.require(expr, t, capability.MoveAssign)
		return
	}
	if t, ok := c.copiedType(expr); ok {
		c.require(expr, t, capability.CopyAssign)
	}
}

func (c *checker) checkCall(call *ast.CallExpr) {
	info := c.pass.TypesInfo
	if tv, ok := info.Types[call.Fun]; ok && tv.IsType() {
		return
	}
	if id, ok := ast.Unparen(call.Fun).(*ast.Ident); ok {
		if b, ok := info.Uses[id].(*types.Builtin); ok {
			if b.Name() == "append" && !call.Ellipsis.IsValid() {
				for _, arg := range call.Args[1:] {
					c.checkInit(arg)
				}
			}
			return
		}
	}
	if c.isCapabilityFunc(call, "MoveInto") && len(call.Args) == 2 {
		if ptr, ok := info.TypeOf(call.Args[0]).Underlying().(*types.Pointer); ok {
			c.require(call, ptr.Elem(), capability.MoveAssign)
		}
		return
	}
	for _, arg := range call.Args {
		c.checkInit(arg)
	}
}

// checkMethodValue reports value receiver methods selected from an existing value, either called or taken as a method value.
// A pointer operand is dereferenced to get the receiver, so it's always copied.
func (c *checker) checkMethodValue(sel *ast.SelectorExpr) {
	selection, ok := c.pass.TypesInfo.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return
	}
	sig, ok := selection.Obj().Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return
	}
	recv := sig.Recv().Type()
	if _, isPtr := recv.Underlying().(*types.Pointer); isPtr {
		return
	}
	if _, isIface := recv.Underlying().(*types.Interface); isIface {
		return
	}
	_, deref := c.pass.TypesInfo.TypeOf(sel.X).Underlying().(*types.Pointer)
	if !deref && !c.isExisting(sel.X) {
		return
	}
	c.require(sel.X, recv, capability.CopyCtor)
}

func (c *checker) checkRange(stmt *ast.RangeStmt) {
	elem := stmt.Value
	var elemType types.Type
	switch u := c.pass.TypesInfo.TypeOf(stmt.X).Underlying().(type) {
	case *types.Array:
		elemType = u.Elem()
	case *types.Slice:
		elemType = u.Elem()
	case *types.Map:
		elemType = u.Elem()
	case *types.Pointer:
		arr, ok := u.Elem().Underlying().(*types.Array)
		if !ok {
			return
		}
		elemType = arr.Elem()
	case *types.Chan:
		elem = stmt.Key
		elemType = u.Elem()
	default:
		return
	}
	if elem == nil {
		return
	}
	if ident, ok := elem.(*ast.Ident); ok && ident.Name == "_" {
		return
	}
	op := capability.CopyAssign
	if stmt.Tok == token.DEFINE {
		op = capability.CopyCtor
	}
	c.require(elem, elemType, op)
}

func (c *checker) require(node ast.Node, t types.Type, op capability.Op) {
	if t == nil {
		return
	}
	m := c.resolver.Matrix(t)
	if m.Allows(op) {
		return
	}
	c.pass.ReportRangef(node, "%s is not %s: %s", types.TypeString(t, types.RelativeTo(c.pass.Pkg)), op.Adjective(), m.Entry(op).Explain(op))
}

// moveCall returns the moved type if expr is a call to capability.Move.
func (c *checker) moveCall(expr ast.Expr) (types.Type, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || !c.isCapabilityFunc(call, "Move") {
		return nil, false
	}
	return c.pass.TypesInfo.TypeOf(call), true
}

func (c *checker) isCapabilityFunc(call *ast.CallExpr, name string) bool {
	fn, ok := typeutil.Callee(c.pass.TypesInfo, call).(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == capability.ImportPath && fn.Name() == name
}

// copiedType returns the type of the value copied by using expr.
// That's the case for an existing value, and for a conversion of one.
// Converting to an interface copies the operand, so the operand's type is returned.
func (c *checker) copiedType(expr ast.Expr) (types.Type, bool) {
	info := c.pass.TypesInfo
	if c.isExisting(expr) {
		return info.TypeOf(expr), true
	}
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return nil, false
	}
	if tv, ok := info.Types[call.Fun]; !ok || !tv.IsType() {
		return nil, false
	}
	operand, ok := c.copiedType(call.Args[0])
	if !ok {
		return nil, false
	}
	t := info.TypeOf(call)
	if types.IsInterface(t) {
		return operand, true
	}
	return t, true
}

// isExisting reports whether expr denotes a value that already has a location, so that using it makes a copy.
func (c *checker) isExisting(expr ast.Expr) bool {
	info := c.pass.TypesInfo
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		_, ok := info.Uses[e].(*types.Var)
		return ok
	case *ast.SelectorExpr:
		if sel, ok := info.Selections[e]; ok {
			return sel.Kind() == types.FieldVal
		}
		_, ok := info.Uses[e.Sel].(*types.Var)
		return ok
	case *ast.IndexExpr:
		tv, ok := info.Types[e.X]
		if !ok || tv.IsType() {
			return false
		}
		switch u := tv.Type.Underlying().(type) {
		case *types.Array, *types.Slice, *types.Map:
			return true
		case *types.Pointer:
			_, ok := u.Elem().Underlying().(*types.Array)
			return ok
		}
		return false
	case *ast.StarExpr:
		return true
	}
	return false
}
