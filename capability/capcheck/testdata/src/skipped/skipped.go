package skipped

import "github.com/saylorsolutions/diag/capability"

type Unique struct {
	_ capability.NoCopy
}

func Copy(u *Unique) Unique {
	return *u
}
