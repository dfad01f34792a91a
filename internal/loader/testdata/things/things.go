package things

import (
	"github.com/saylorsolutions/diag/capability"
	"os"
)

type Buffer struct {
	_    capability.NoCopy
	_    capability.DefaultMove
	data []byte
}

type File struct {
	f *os.File
}

func (f *File) Close() error {
	return f.f.Close()
}

type Owner struct {
	buf Buffer
}

type Point struct {
	X, Y int
}

type Box[T any] struct {
	_   capability.NoCopy
	val T
}

type Names []string
