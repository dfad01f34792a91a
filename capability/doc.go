/*
Package capability declares whether a struct type may be copied or moved, one line per capability.

A declarator is a zero-size marker type that is added to a struct as a blank field.
Blank fields don't promote methods, and a marker declared first doesn't change the struct's size.

	type Conn struct {
		_  capability.NoCopy
		_  capability.DefaultMove
		fd int
	}

# Operations

Go copies values implicitly, and has no move operation, so this package defines what each operation means for a Go value.

  - Copy construction initializes a new location from an existing value: b := a, var b = a, passing or returning a by value, using a in a composite literal, ranging over values, or sending a on a channel.
    Converting an existing value, T(a), and selecting a value receiver method from it, a.Method, also copy it.
  - Copy assignment overwrites an existing location from an existing value: b = a.
  - Move construction initializes a new location with [Move]: b := capability.Move(&a).
  - Move assignment overwrites an existing location with [Move] or [MoveInto].

An existing value is a variable, field, index expression, or pointer dereference.
Values produced by function calls and composite literals are new, so using them is neither a copy nor a move.

# Declarators

Each capability is available for the constructor, the assignment, or both.

	| capability         | constructor      | assignment        | both        |
	|--------------------|------------------|-------------------|-------------|
	| forbid copy        | NoCopyCtor       | NoCopyAssign      | NoCopy      |
	| forbid move        | NoMoveCtor       | NoMoveAssign      | NoMove      |
	| force-default copy | DefaultCopyCtor  | DefaultCopyAssign | DefaultCopy |
	| force-default move | DefaultMoveCtor  | DefaultMoveAssign | DefaultMove |

Without a declarator an operation is implicit, and allowed unless it's suppressed by one of these rules.

  - A field whose type doesn't allow an operation suppresses it in the enclosing type.
  - Declaring any move declarator suppresses implicit copies.
  - Declaring any copy declarator suppresses implicit moves.
  - A destructor, meaning a Close() error method, suppresses implicit moves.

A Default declarator overrides the last three rules, but can't override a field that forbids the operation.

Declarators have no runtime effect.
They are enforced by the capcheck analyzer, and can be inspected at runtime with [Of] and [For].
[NoCopy] also satisfies [sync.Locker], so the copylocks check in go vet reports copies of types that declare it.
*/
package capability
