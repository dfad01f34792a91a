package capability

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMove(t *testing.T) {
	src := unique{buf: []byte("abc")}

	dst := Move(&src)

	assert.Equal(t, []byte("abc"), dst.buf)
	assert.Nil(t, src.buf)
}

func TestMoveInto(t *testing.T) {
	src := unique{buf: []byte("abc")}
	dst := unique{buf: []byte("xyz")}

	MoveInto(&dst, &src)

	assert.Equal(t, []byte("abc"), dst.buf)
	assert.Nil(t, src.buf)
}

func TestMoveInto_Self(t *testing.T) {
	val := unique{buf: []byte("abc")}

	MoveInto(&val, &val)

	assert.Equal(t, []byte("abc"), val.buf)
}
