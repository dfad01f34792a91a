package capability

import "sync"

// ImportPath is the import path of this package, which is used to recognize declarators in type information.
const ImportPath = "github.com/saylorsolutions/diag/capability"

// NoCopy forbids copy construction and copy assignment.
type NoCopy struct{}

var _ sync.Locker = (*NoCopy)(nil)

// Lock is a no-op used by the copylocks check in go vet.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by the copylocks check in go vet.
func (*NoCopy) Unlock() {}

// NoCopyCtor forbids copy construction.
type NoCopyCtor struct{}

// NoCopyAssign forbids copy assignment.
type NoCopyAssign struct{}

// NoMove forbids move construction and move assignment.
type NoMove struct{}

// NoMoveCtor forbids move construction.
type NoMoveCtor struct{}

// NoMoveAssign forbids move assignment.
type NoMoveAssign struct{}

// DefaultCopy declares memberwise copy construction and copy assignment, even if an implicit copy would be suppressed.
type DefaultCopy struct{}

// DefaultCopyCtor declares memberwise copy construction.
type DefaultCopyCtor struct{}

// DefaultCopyAssign declares memberwise copy assignment.
type DefaultCopyAssign struct{}

// DefaultMove declares memberwise move construction and move assignment, even if an implicit move would be suppressed.
type DefaultMove struct{}

// DefaultMoveCtor declares memberwise move construction.
type DefaultMoveCtor struct{}

// DefaultMoveAssign declares memberwise move assignment.
type DefaultMoveAssign struct{}

// Declarator describes one of the declarator types in this package.
type Declarator struct {
	Name   string // Name is the type name of the declarator.
	Ops    Ops    // Ops are the operations that the declarator applies to.
	Forbid bool   // Forbid is true for No declarators, and false for Default declarators.
}

var declarators = map[string]Declarator{
	"NoCopy":            {Name: "NoCopy", Ops: CopyOps, Forbid: true},
	"NoCopyCtor":        {Name: "NoCopyCtor", Ops: CopyCtor.Set(), Forbid: true},
	"NoCopyAssign":      {Name: "NoCopyAssign", Ops: CopyAssign.Set(), Forbid: true},
	"NoMove":            {Name: "NoMove", Ops: MoveOps, Forbid: true},
	"NoMoveCtor":        {Name: "NoMoveCtor", Ops: MoveCtor.Set(), Forbid: true},
	"NoMoveAssign":      {Name: "NoMoveAssign", Ops: MoveAssign.Set(), Forbid: true},
	"DefaultCopy":       {Name: "DefaultCopy", Ops: CopyOps},
	"DefaultCopyCtor":   {Name: "DefaultCopyCtor", Ops: CopyCtor.Set()},
	"DefaultCopyAssign": {Name: "DefaultCopyAssign", Ops: CopyAssign.Set()},
	"DefaultMove":       {Name: "DefaultMove", Ops: MoveOps},
	"DefaultMoveCtor":   {Name: "DefaultMoveCtor", Ops: MoveCtor.Set()},
	"DefaultMoveAssign": {Name: "DefaultMoveAssign", Ops: MoveAssign.Set()},
}

// LookupDeclarator returns the [Declarator] with the given type name, and false if there isn't one.
func LookupDeclarator(name string) (Declarator, bool) {
	dcl, ok := declarators[name]
	return dcl, ok
}
