package interntoken

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tab := NewTable()
	a := tab.Get(string([]byte("lambda")))
	b := tab.Get(string([]byte("lambda")))
	assert.Equal(t, "lambda", b)
	assert.Equal(t, unsafe.StringData(a), unsafe.StringData(b))
	tab.Get("define")
	assert.Equal(t, 2, tab.Len())

	var empty *Table
	assert.Equal(t, "x", empty.Get("x"))
	assert.Equal(t, 0, empty.Len())
}
