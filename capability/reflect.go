package capability

import (
	"reflect"
	"sync"
)

var (
	resolved  sync.Map // map[reflect.Type]Matrix
	errorType = reflect.TypeFor[error]()
)

// For returns the resolved [Matrix] of T.
func For[T any]() Matrix {
	return Of(reflect.TypeFor[T]())
}

// Of returns the resolved [Matrix] of t.
// Types that aren't structs or arrays of structs always have an implicit matrix.
func Of(t reflect.Type) Matrix {
	if m, ok := resolved.Load(t); ok {
		return m.(Matrix)
	}
	m := resolveType(t)
	resolved.Store(t, m)
	return m
}

func resolveType(t reflect.Type) Matrix {
	switch t.Kind() {
	case reflect.Array:
		m := Of(t.Elem())
		m.Type = t.String()
		return m
	case reflect.Struct:
		var (
			decl   Declaration
			fields []Field
		)
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if dcl, ok := declaratorOf(f.Type); ok {
				decl.Add(dcl)
				continue
			}
			if fm := Of(f.Type); fm.Restricted() {
				fields = append(fields, Field{Name: f.Name, Matrix: fm})
			}
		}
		decl.Destructor = hasDestructor(t)
		return Resolve(t.String(), decl, fields)
	default:
		return Resolve(t.String(), Declaration{}, nil)
	}
}

func declaratorOf(t reflect.Type) (Declarator, bool) {
	if t.PkgPath() != ImportPath {
		return Declarator{}, false
	}
	return LookupDeclarator(t.Name())
}

// hasDestructor looks for a Close() error method on t or *t.
func hasDestructor(t reflect.Type) bool {
	m, ok := reflect.PointerTo(t).MethodByName("Close")
	if !ok {
		return false
	}
	// The method type includes the receiver.
	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == errorType
}
