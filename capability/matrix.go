package capability

import (
	"fmt"
	"strings"
)

// Op is a copy or move operation.
type Op uint8

const (
	CopyCtor Op = iota
	CopyAssign
	MoveCtor
	MoveAssign

	numOps = 4
)

// AllOps lists every [Op] in matrix order.
var AllOps = [numOps]Op{CopyCtor, CopyAssign, MoveCtor, MoveAssign}

func (op Op) String() string {
	switch op {
	case CopyCtor:
		return "copy-ctor"
	case CopyAssign:
		return "copy-assign"
	case MoveCtor:
		return "move-ctor"
	case MoveAssign:
		return "move-assign"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Adjective describes a type that allows the operation, e.g. "copy-constructible".
func (op Op) Adjective() string {
	switch op {
	case CopyCtor:
		return "copy-constructible"
	case CopyAssign:
		return "copy-assignable"
	case MoveCtor:
		return "move-constructible"
	case MoveAssign:
		return "move-assignable"
	default:
		return op.String()
	}
}

// IsCopy is true for copy operations.
func (op Op) IsCopy() bool {
	return op == CopyCtor || op == CopyAssign
}

// Set returns an [Ops] that only contains op.
func (op Op) Set() Ops {
	return 1 << op
}

// Ops is a set of operations.
type Ops uint8

const (
	CopyOps = Ops(1<<CopyCtor | 1<<CopyAssign) // CopyOps contains both copy operations.
	MoveOps = Ops(1<<MoveCtor | 1<<MoveAssign) // MoveOps contains both move operations.
)

// Has reports whether op is in the set.
func (o Ops) Has(op Op) bool {
	return o&op.Set() != 0
}

// State is the resolved state of an operation for a type.
type State uint8

const (
	Implicit   State = iota // Implicit operations are allowed without a declarator.
	Defaulted                // Defaulted operations are allowed by a Default declarator.
	Forbidden                // Forbidden operations are forbidden by a No declarator.
	Suppressed               // Suppressed operations are implicitly forbidden, see Reason.
)

func (s State) String() string {
	switch s {
	case Implicit:
		return "implicit"
	case Defaulted:
		return "default"
	case Forbidden:
		return "forbidden"
	case Suppressed:
		return "suppressed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Allowed is true for [Implicit] and [Defaulted].
func (s State) Allowed() bool {
	return s == Implicit || s == Defaulted
}

// Reason explains how a [State] was resolved.
type Reason uint8

const (
	ReasonNone         Reason = iota
	ReasonDeclared            // A declarator named by Entry.By applies to the operation.
	ReasonField               // The field named by Entry.By doesn't allow the operation.
	ReasonMoveDeclared        // The move declarator named by Entry.By suppresses implicit copies.
	ReasonCopyDeclared        // The copy declarator named by Entry.By suppresses implicit moves.
	ReasonDestructor          // A Close method suppresses implicit moves.
)

// Entry is the resolved state of one operation.
type Entry struct {
	State  State
	Reason Reason
	By     string // By names the declarator or field given by Reason.
}

// Explain returns a short, human readable explanation of the entry for op.
func (e Entry) Explain(op Op) string {
	switch e.Reason {
	case ReasonDeclared:
		if e.State == Defaulted {
			return "defaulted by " + e.By
		}
		return "declared " + e.By
	case ReasonField:
		return "field " + e.By + " is not " + op.Adjective()
	case ReasonMoveDeclared:
		return "implicit copy suppressed by " + e.By
	case ReasonCopyDeclared:
		return "implicit move suppressed by " + e.By
	case ReasonDestructor:
		return "implicit move suppressed by Close method"
	default:
		return "implicit"
	}
}

// Matrix is the resolved capability of a type for every [Op].
type Matrix struct {
	Type    string
	Entries [numOps]Entry
}

// Entry returns the resolved entry for op.
func (m Matrix) Entry(op Op) Entry {
	return m.Entries[op]
}

// Allows reports whether op is allowed for the type.
func (m Matrix) Allows(op Op) bool {
	return m.Entries[op].State.Allowed()
}

// Restricted is true if any operation is not allowed.
func (m Matrix) Restricted() bool {
	for _, e := range m.Entries {
		if !e.State.Allowed() {
			return true
		}
	}
	return false
}

// Declared is true if any operation was resolved from a declarator on the type itself.
func (m Matrix) Declared() bool {
	for _, e := range m.Entries {
		if e.Reason == ReasonDeclared {
			return true
		}
	}
	return false
}

func (m Matrix) String() string {
	var buf strings.Builder
	buf.WriteString(m.Type)
	buf.WriteString("{")
	for i, op := range AllOps {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(op.String())
		buf.WriteString(": ")
		buf.WriteString(m.Entries[op].State.String())
	}
	buf.WriteString("}")
	return buf.String()
}

// Declaration collects the declarators and destructor of a type before it's resolved.
type Declaration struct {
	forbid     [numOps]string
	def        [numOps]string
	Destructor bool // Destructor is true if the type has a Close() error method.
}

// Add records a declarator.
// The first declarator of each kind is kept for each operation.
func (d *Declaration) Add(dcl Declarator) {
	target := &d.def
	if dcl.Forbid {
		target = &d.forbid
	}
	for _, op := range AllOps {
		if dcl.Ops.Has(op) && len(target[op]) == 0 {
			target[op] = dcl.Name
		}
	}
}

// Forbids returns the No declarator that applies to op, if any.
func (d Declaration) Forbids(op Op) (string, bool) {
	return d.forbid[op], len(d.forbid[op]) > 0
}

// Defaults returns the Default declarator that applies to op, if any.
func (d Declaration) Defaults(op Op) (string, bool) {
	return d.def[op], len(d.def[op]) > 0
}

// declares returns the first declarator of either kind that applies to any of ops.
func (d Declaration) declares(ops Ops) (string, bool) {
	for _, op := range AllOps {
		if !ops.Has(op) {
			continue
		}
		if name, ok := d.Forbids(op); ok {
			return name, true
		}
		if name, ok := d.Defaults(op); ok {
			return name, true
		}
	}
	return "", false
}

// Field is a member of a type, with its own resolved [Matrix].
// Only fields that can restrict the enclosing type need to be given to [Resolve].
type Field struct {
	Name   string
	Matrix Matrix
}

// Resolve applies the capability rules to a declaration and the fields of a type.
func Resolve(typeName string, decl Declaration, fields []Field) Matrix {
	m := Matrix{Type: typeName}
	for _, op := range AllOps {
		m.Entries[op] = resolveOp(op, decl, fields)
	}
	return m
}

func resolveOp(op Op, decl Declaration, fields []Field) Entry {
	if name, ok := decl.Forbids(op); ok {
		return Entry{State: Forbidden, Reason: ReasonDeclared, By: name}
	}
	blocking, blocked := blockingField(op, fields)
	if name, ok := decl.Defaults(op); ok {
		if blocked {
			return Entry{State: Suppressed, Reason: ReasonField, By: blocking}
		}
		return Entry{State: Defaulted, Reason: ReasonDeclared, By: name}
	}
	if blocked {
		return Entry{State: Suppressed, Reason: ReasonField, By: blocking}
	}
	if op.IsCopy() {
		if name, ok := decl.declares(MoveOps); ok {
			return Entry{State: Suppressed, Reason: ReasonMoveDeclared, By: name}
		}
		return Entry{State: Implicit}
	}
	if name, ok := decl.declares(CopyOps); ok {
		return Entry{State: Suppressed, Reason: ReasonCopyDeclared, By: name}
	}
	if decl.Destructor {
		return Entry{State: Suppressed, Reason: ReasonDestructor}
	}
	return Entry{State: Implicit}
}

func blockingField(op Op, fields []Field) (string, bool) {
	for _, f := range fields {
		if !f.Matrix.Allows(op) {
			return f.Name, true
		}
	}
	return "", false
}
