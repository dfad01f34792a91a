package capcheck

import (
	"github.com/saylorsolutions/diag/capability"
	"go/types"
	"golang.org/x/tools/go/types/typeutil"
)

// Resolver computes capability matrices from type information, the same way [capability.Of] does from reflection.
// A Resolver caches results, and is not safe for concurrent use.
type Resolver struct {
	cache typeutil.Map
}

// NewResolver creates an empty [Resolver].
func NewResolver() *Resolver {
	return new(Resolver)
}

// Matrix returns the resolved matrix of t.
// Types that aren't structs or arrays of structs have an implicit matrix.
func (r *Resolver) Matrix(t types.Type) capability.Matrix {
	if m, ok := r.cache.At(t).(capability.Matrix); ok {
		return m
	}
	m := r.resolve(t)
	r.cache.Set(t, m)
	return m
}

func (r *Resolver) resolve(t types.Type) capability.Matrix {
	name := types.TypeString(t, (*types.Package).Name)
	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Array:
		m := r.Matrix(u.Elem())
		m.Type = name
		return m
	case *types.Struct:
		info := r.inspect(t, u)
		return capability.Resolve(name, info.decl, info.fields)
	default:
		return capability.Resolve(name, capability.Declaration{}, nil)
	}
}

type marker struct {
	field *types.Var
	dcl   capability.Declarator
}

type structInfo struct {
	decl    capability.Declaration
	markers []marker
	fields  []capability.Field
}

func (r *Resolver) inspect(t types.Type, s *types.Struct) structInfo {
	var info structInfo
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		if dcl, ok := declaratorOf(f.Type()); ok {
			info.decl.Add(dcl)
			info.markers = append(info.markers, marker{field: f, dcl: dcl})
			continue
		}
		if fm := r.Matrix(f.Type()); fm.Restricted() {
			info.fields = append(info.fields, capability.Field{Name: f.Name(), Matrix: fm})
		}
	}
	info.decl.Destructor = hasDestructor(t)
	return info
}

func declaratorOf(t types.Type) (capability.Declarator, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return capability.Declarator{}, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != capability.ImportPath {
		return capability.Declarator{}, false
	}
	return capability.LookupDeclarator(obj.Name())
}

var errorType = types.Universe.Lookup("error").Type()

// hasDestructor looks for a Close() error method on t or *t.
func hasDestructor(t types.Type) bool {
	sel := types.NewMethodSet(types.NewPointer(t)).Lookup(nil, "Close")
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok {
		return false
	}
	return sig.Params().Len() == 0 && sig.Results().Len() == 1 && types.Identical(sig.Results().At(0).Type(), errorType)
}
