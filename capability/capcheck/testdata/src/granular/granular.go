package granular

import "github.com/saylorsolutions/diag/capability"

type AssignLocked struct {
	_ capability.NoCopyAssign
	n int
}

func AssignLockedOps(a, b *AssignLocked) {
	c := *a
	*b = *a // want `AssignLocked is not copy-assignable: declared NoCopyAssign`
	d := capability.Move(a) // want `AssignLocked is not move-constructible: implicit move suppressed by NoCopyAssign`
	*b = capability.Move(a) // want `AssignLocked is not move-assignable: implicit move suppressed by NoCopyAssign`
	_, _ = c.n, d.n
}

type CtorPinned struct {
	_ capability.NoMoveCtor
	n int
}

func CtorPinnedOps(a, b *CtorPinned) {
	c := *a // want `CtorPinned is not copy-constructible: implicit copy suppressed by NoMoveCtor`
	*b = *a // want `CtorPinned is not copy-assignable: implicit copy suppressed by NoMoveCtor`
	d := capability.Move(a) // want `CtorPinned is not move-constructible: declared NoMoveCtor`
	*b = capability.Move(a)
	_, _ = c.n, d.n
}

type Copyable struct {
	_ capability.NoMove
	_ capability.DefaultCopy
	n int
}

func CopyableOps(a, b *Copyable) {
	c := *a
	*b = *a
	d := capability.Move(a) // want `Copyable is not move-constructible: declared NoMove`
	capability.MoveInto(b, a) // want `Copyable is not move-assignable: declared NoMove`
	_, _ = c.n, d.n
}

type CtorCopyable struct {
	_ capability.NoMoveAssign
	_ capability.DefaultCopyCtor
	n int
}

func CtorCopyableOps(a, b *CtorCopyable) {
	c := *a
	*b = *a // want `CtorCopyable is not copy-assignable: implicit copy suppressed by NoMoveAssign`
	d := capability.Move(a) // want `CtorCopyable is not move-constructible: implicit move suppressed by DefaultCopyCtor`
	*b = capability.Move(a) // want `CtorCopyable is not move-assignable: declared NoMoveAssign`
	_, _ = c.n, d.n
}

type AssignCopyable struct {
	_ capability.NoMoveCtor
	_ capability.DefaultCopyAssign
	n int
}

func AssignCopyableOps(a, b *AssignCopyable) {
	c := *a // want `AssignCopyable is not copy-constructible: implicit copy suppressed by NoMoveCtor`
	*b = *a
	d := capability.Move(a) // want `AssignCopyable is not move-constructible: declared NoMoveCtor`
	*b = capability.Move(a) // want `AssignCopyable is not move-assignable: implicit move suppressed by DefaultCopyAssign`
	_, _ = c.n, d.n
}

type CtorMovable struct {
	_ capability.NoCopyAssign
	_ capability.DefaultMoveCtor
	n int
}

func CtorMovableOps(a, b *CtorMovable) {
	c := *a // want `CtorMovable is not copy-constructible: implicit copy suppressed by DefaultMoveCtor`
	*b = *a // want `CtorMovable is not copy-assignable: declared NoCopyAssign`
	d := capability.Move(a)
	*b = capability.Move(a) // want `CtorMovable is not move-assignable: implicit move suppressed by NoCopyAssign`
	_, _ = c.n, d.n
}

type AssignMovable struct {
	_  capability.DefaultMoveAssign
	fd int
}

func (m *AssignMovable) Close() error {
	return nil
}

func AssignMovableOps(a, b *AssignMovable) {
	c := *a // want `AssignMovable is not copy-constructible: implicit copy suppressed by DefaultMoveAssign`
	*b = *a // want `AssignMovable is not copy-assignable: implicit copy suppressed by DefaultMoveAssign`
	d := capability.Move(a) // want `AssignMovable is not move-constructible: implicit move suppressed by Close method`
	*b = capability.Move(a)
	_, _ = c.fd, d.fd
}
