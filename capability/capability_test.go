package capability

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"
)

type plain struct {
	n int
}

type unique struct {
	_   NoCopy
	_   DefaultMove
	buf []byte
}

type pinned struct {
	_ NoCopy
	_ NoMove
}

type handle struct {
	fd int
}

func (h *handle) Close() error {
	return nil
}

type movableHandle struct {
	_  DefaultMove
	fd int
}

func (h *movableHandle) Close() error {
	return nil
}

type holder struct {
	name string
	u    unique
}

type holderArray struct {
	us [2]unique
}

type copyCtorOnly struct {
	_ NoCopyCtor
}

type conflicted struct {
	_ NoCopy
	_ DefaultCopy
}

type defaultBlocked struct {
	_ DefaultCopy
	_ DefaultMove
	p pinned
}

type pointers struct {
	p  *pinned
	ps []pinned
	m  map[string]pinned
}

func TestImportPath(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[NoCopy]().PkgPath(), ImportPath)
}

func TestLookupDeclarator(t *testing.T) {
	dcl, ok := LookupDeclarator("NoCopy")
	assert.True(t, ok)
	assert.True(t, dcl.Forbid)
	assert.True(t, dcl.Ops.Has(CopyCtor))
	assert.True(t, dcl.Ops.Has(CopyAssign))
	assert.False(t, dcl.Ops.Has(MoveCtor))

	dcl, ok = LookupDeclarator("DefaultMoveAssign")
	assert.True(t, ok)
	assert.False(t, dcl.Forbid)
	assert.Equal(t, MoveAssign.Set(), dcl.Ops)

	_, ok = LookupDeclarator("Ops")
	assert.False(t, ok)
}

func states(m Matrix) [numOps]State {
	var s [numOps]State
	for _, op := range AllOps {
		s[op] = m.Entry(op).State
	}
	return s
}

func TestFor(t *testing.T) {
	tests := map[string]struct {
		matrix   Matrix
		expected [numOps]State
	}{
		"Plain": {
			matrix:   For[plain](),
			expected: [numOps]State{Implicit, Implicit, Implicit, Implicit},
		},
		"Basic type": {
			matrix:   For[int](),
			expected: [numOps]State{Implicit, Implicit, Implicit, Implicit},
		},
		"Unique": {
			matrix:   For[unique](),
			expected: [numOps]State{Forbidden, Forbidden, Defaulted, Defaulted},
		},
		"Pinned": {
			matrix:   For[pinned](),
			expected: [numOps]State{Forbidden, Forbidden, Forbidden, Forbidden},
		},
		"Destructor": {
			matrix:   For[handle](),
			expected: [numOps]State{Implicit, Implicit, Suppressed, Suppressed},
		},
		"Destructor with DefaultMove": {
			matrix:   For[movableHandle](),
			expected: [numOps]State{Suppressed, Suppressed, Defaulted, Defaulted},
		},
		"Field inherits": {
			matrix:   For[holder](),
			expected: [numOps]State{Suppressed, Suppressed, Implicit, Implicit},
		},
		"Array field inherits": {
			matrix:   For[holderArray](),
			expected: [numOps]State{Suppressed, Suppressed, Implicit, Implicit},
		},
		"Constructor only": {
			matrix:   For[copyCtorOnly](),
			expected: [numOps]State{Forbidden, Implicit, Suppressed, Suppressed},
		},
		"Conflict": {
			matrix:   For[conflicted](),
			expected: [numOps]State{Forbidden, Forbidden, Suppressed, Suppressed},
		},
		"Default blocked by field": {
			matrix:   For[defaultBlocked](),
			expected: [numOps]State{Suppressed, Suppressed, Suppressed, Suppressed},
		},
		"Indirect fields": {
			matrix:   For[pointers](),
			expected: [numOps]State{Implicit, Implicit, Implicit, Implicit},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, states(tc.matrix))
		})
	}
}

func TestFor_Reasons(t *testing.T) {
	m := For[holder]()
	assert.Equal(t, "field u is not copy-constructible", m.Entry(CopyCtor).Explain(CopyCtor))

	m = For[unique]()
	assert.Equal(t, "declared NoCopy", m.Entry(CopyAssign).Explain(CopyAssign))
	assert.Equal(t, "defaulted by DefaultMove", m.Entry(MoveCtor).Explain(MoveCtor))

	m = For[movableHandle]()
	assert.Equal(t, "implicit copy suppressed by DefaultMove", m.Entry(CopyCtor).Explain(CopyCtor))

	m = For[handle]()
	assert.Equal(t, "implicit move suppressed by Close method", m.Entry(MoveAssign).Explain(MoveAssign))

	m = For[copyCtorOnly]()
	assert.Equal(t, "implicit move suppressed by NoCopyCtor", m.Entry(MoveCtor).Explain(MoveCtor))

	m = For[defaultBlocked]()
	assert.Equal(t, "field p is not move-assignable", m.Entry(MoveAssign).Explain(MoveAssign))

	m = For[plain]()
	assert.Equal(t, "implicit", m.Entry(CopyCtor).Explain(CopyCtor))
}

func TestMatrix(t *testing.T) {
	m := For[unique]()
	assert.True(t, m.Restricted())
	assert.True(t, m.Declared())
	assert.False(t, m.Allows(CopyCtor))
	assert.True(t, m.Allows(MoveAssign))
	assert.Equal(t, "capability.unique{copy-ctor: forbidden, copy-assign: forbidden, move-ctor: default, move-assign: default}", m.String())

	m = For[holder]()
	assert.True(t, m.Restricted())
	assert.False(t, m.Declared())

	m = For[plain]()
	assert.False(t, m.Restricted())
	assert.False(t, m.Declared())
}

func TestResolve_FirstDeclaratorWins(t *testing.T) {
	var decl Declaration
	decl.Add(declarators["NoCopyCtor"])
	decl.Add(declarators["NoCopy"])

	name, ok := decl.Forbids(CopyCtor)
	assert.True(t, ok)
	assert.Equal(t, "NoCopyCtor", name)
	name, ok = decl.Forbids(CopyAssign)
	assert.True(t, ok)
	assert.Equal(t, "NoCopy", name)
	_, ok = decl.Defaults(CopyAssign)
	assert.False(t, ok)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "copy-ctor", CopyCtor.String())
	assert.Equal(t, "move-assign", MoveAssign.String())
	assert.Equal(t, "Op(9)", Op(9).String())
	assert.Equal(t, "move-constructible", MoveCtor.Adjective())
	assert.Equal(t, "suppressed", Suppressed.String())
}
