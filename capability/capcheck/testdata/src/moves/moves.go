package moves

import "github.com/saylorsolutions/diag/capability"

type Pinned struct {
	_ capability.NoCopy
	_ capability.NoMove
	n int
}

type Conn struct {
	fd int
}

func (c *Conn) Close() error {
	return nil
}

type OwnedConn struct {
	_  capability.DefaultMove
	fd int
}

func (c *OwnedConn) Close() error {
	return nil
}

type Unique struct {
	_ capability.NoCopy
	_ capability.DefaultMove
}

type MoveCtorOnly struct {
	_ capability.NoMoveAssign
	_ capability.DefaultMoveCtor
	_ capability.DefaultCopy
}

func take(p Pinned) {}

func Moves(p, q *Pinned, c *Conn, oc, oc2 *OwnedConn, u *Unique) {
	a := capability.Move(p) // want `Pinned is not move-constructible: declared NoMove`
	*q = capability.Move(p) // want `Pinned is not move-assignable: declared NoMove`
	capability.MoveInto(q, p) // want `Pinned is not move-assignable: declared NoMove`
	take(capability.Move(p)) // want `Pinned is not move-constructible: declared NoMove`
	conn := capability.Move(c) // want `Conn is not move-constructible: implicit move suppressed by Close method`
	owned := capability.Move(oc)
	*oc2 = capability.Move(oc)
	capability.MoveInto(oc2, oc)
	uniq := capability.Move(u)
	_, _, _, _ = a.n, conn.fd, owned.fd, uniq
}

func Take(p *Pinned) Pinned {
	return capability.Move(p) // want `Pinned is not move-constructible: declared NoMove`
}

func Partial(a, b *MoveCtorOnly) {
	x := capability.Move(a)
	*b = capability.Move(a) // want `MoveCtorOnly is not move-assignable: declared NoMoveAssign`
	y := *a
	_, _ = x, y
}
