package copies

import "github.com/saylorsolutions/diag/capability"

type Unique struct {
	_   capability.NoCopy
	_   capability.DefaultMove
	buf []byte
}

func NewUnique() Unique {
	return Unique{buf: make([]byte, 8)}
}

func (u Unique) Size() int {
	return len(u.buf)
}

func (u *Unique) Reset() {
	u.buf = u.buf[:0]
}

type Holder struct {
	name string
	u    Unique
}

type CtorOnly struct {
	_ capability.NoCopyCtor
	n int
}

type Plain struct {
	n int
}

type Alias Unique

type Sizer interface {
	Size() int
}

var global Unique

func use(u Unique) {}

func Copies(p *Unique, us []Unique, m map[string]Unique, arr [2]Unique, ch chan Unique) Unique {
	a := NewUnique()
	b := a // want `Unique is not copy-constructible: declared NoCopy`
	var c = a // want `Unique is not copy-constructible: declared NoCopy`
	var d Unique
	d = a // want `Unique is not copy-assignable: declared NoCopy`
	use(a) // want `Unique is not copy-constructible: declared NoCopy`
	e := *p // want `Unique is not copy-constructible: declared NoCopy`
	f := us[0] // want `Unique is not copy-constructible: declared NoCopy`
	g := m["k"] // want `Unique is not copy-constructible: declared NoCopy`
	h := arr[1] // want `Unique is not copy-constructible: declared NoCopy`
	i := global // want `Unique is not copy-constructible: declared NoCopy`
	_ = []Unique{a} // want `Unique is not copy-constructible: declared NoCopy`
	us = append(us, a) // want `Unique is not copy-constructible: declared NoCopy`
	ch <- a // want `Unique is not copy-constructible: declared NoCopy`
	for _, u := range us { // want `Unique is not copy-constructible: declared NoCopy`
		_ = u.buf
	}
	for u := range ch { // want `Unique is not copy-constructible: declared NoCopy`
		_ = u.buf
	}
	_ = a.Size() // want `Unique is not copy-constructible: declared NoCopy`
	p.Reset()
	_, _, _, _, _, _, _, _ = b, c, d, e, f, g, h, i
	return a // want `Unique is not copy-constructible: declared NoCopy`
}

func HolderCopies(h *Holder) {
	x := *h // want `Holder is not copy-constructible: field u is not copy-constructible`
	_ = x.name
	y := h.u // want `Unique is not copy-constructible: declared NoCopy`
	_ = y.buf
}

func CtorOnlyCopies(a, b *CtorOnly) {
	c := *a // want `CtorOnly is not copy-constructible: declared NoCopyCtor`
	*b = *a
	_ = c.n
}

func Conversions(p *Unique, q *Alias) {
	a := Unique(*p) // want `Unique is not copy-constructible: declared NoCopy`
	b := Alias(*p) // want `Alias is not copy-constructible: declared NoCopy`
	var c Alias
	c = Alias(*q) // want `Alias is not copy-assignable: declared NoCopy`
	d := any(*p) // want `Unique is not copy-constructible: declared NoCopy`
	use((Unique)(Alias(*p))) // want `Unique is not copy-constructible: declared NoCopy`
	ptr := (*Alias)(p)
	_, _, _, _, _ = a, b, c, d, ptr
}

func MethodValues(p *Unique, s Sizer) {
	a := NewUnique()
	f := a.Size // want `Unique is not copy-constructible: declared NoCopy`
	g := p.Size // want `Unique is not copy-constructible: declared NoCopy`
	_ = p.Size() // want `Unique is not copy-constructible: declared NoCopy`
	h := p.Reset
	i := s.Size
	_, _, _, _ = f, g, h, i
}

func Allowed(p *Unique, pl Plain, us []Unique) *Unique {
	q := p
	other := pl
	fresh := NewUnique()
	lit := Unique{buf: nil}
	for i := range us {
		us[i].Reset()
	}
	for _, ptr := range []*Unique{p} {
		ptr.Reset()
	}
	_ = NewUnique().Size()
	_ = Unique{}.Size()
	fn := NewUnique().Size
	conv := Unique(NewUnique())
	_ = fn
	_ = conv.buf
	_ = other
	_ = fresh.buf
	_ = lit.buf
	return q
}
