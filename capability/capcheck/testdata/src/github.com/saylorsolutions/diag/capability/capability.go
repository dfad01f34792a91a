package capability

type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

type NoCopyCtor struct{}
type NoCopyAssign struct{}
type NoMove struct{}
type NoMoveCtor struct{}
type NoMoveAssign struct{}
type DefaultCopy struct{}
type DefaultCopyCtor struct{}
type DefaultCopyAssign struct{}
type DefaultMove struct{}
type DefaultMoveCtor struct{}
type DefaultMoveAssign struct{}

func Move[T any](src *T) T {
	val := *src
	var zero T
	*src = zero
	return val
}

func MoveInto[T any](dst, src *T) {
	if dst == src {
		return
	}
	*dst = *src
	var zero T
	*src = zero
}
