package decls

import "github.com/saylorsolutions/diag/capability"

type Pinned struct {
	_ capability.NoCopy
	_ capability.NoMove
}

type Conflicted struct {
	_ capability.NoCopy
	_ capability.DefaultCopy // want `DefaultCopy conflicts with NoCopy on Conflicted`
}

type PartialConflict struct {
	_ capability.NoCopyAssign
	_ capability.DefaultCopy // want `DefaultCopy conflicts with NoCopyAssign on PartialConflict`
}

type Ineffective struct {
	_ capability.DefaultMove // want `DefaultMove on Ineffective has no effect: field p is not move-constructible`
	p Pinned
}

type Fine struct {
	_   capability.NoCopy
	_   capability.DefaultMove
	buf []byte
}

type NotAStruct []Pinned
