package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAndPrev(t *testing.T) {
	r := New([]string{"a", "b", "c"})

	r.Next()
	assert.Equal(t, []string{"b", "c", "a"}, r.Items())

	r.Prev()
	r.Prev()
	assert.Equal(t, []string{"c", "a", "b"}, r.Items())
}

func TestFullRotationRestoresOrder(t *testing.T) {
	r := New([]int{1, 2, 3, 4})
	for i := 0; i < r.Len(); i++ {
		r.Next()
	}
	assert.Equal(t, []int{1, 2, 3, 4}, r.Items())
}

func TestVisible(t *testing.T) {
	r := New([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2}, r.Visible(2))
	assert.Equal(t, []int{1, 2, 3}, r.Visible(10))
	assert.Empty(t, r.Visible(-1))
}

func TestSmallRingsAreNoops(t *testing.T) {
	empty := New[int](nil)
	empty.Next()
	empty.Prev()
	assert.Zero(t, empty.Len())

	one := New([]int{7})
	one.Next()
	assert.Equal(t, []int{7}, one.Items())
}

func TestNewCopiesInput(t *testing.T) {
	in := []int{1, 2}
	r := New(in)
	r.Next()
	assert.Equal(t, []int{1, 2}, in)
}
