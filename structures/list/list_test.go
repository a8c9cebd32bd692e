package list

import (
	"github.com/stretchr/testify/assert"
	"slices"
	"testing"
)

func TestList_PushBack(t *testing.T) {
	l := New[int]()
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	for i := 1; i <= 3; i++ {
		l.PushBack(i)
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	assert.Equal(t, 1, l.Front().Value)
	assert.Equal(t, 3, l.Back().Value)
	assert.Equal(t, 2, l.Front().Next().Value)
	assert.Equal(t, 2, l.Back().Prev().Value)
}

func TestList_Remove(t *testing.T) {
	tests := map[string]struct {
		remove   int
		expected []string
	}{
		"Front":  {remove: 0, expected: []string{"b", "c"}},
		"Middle": {remove: 1, expected: []string{"a", "c"}},
		"Back":   {remove: 2, expected: []string{"a", "b"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			l := New[string]()
			nodes := []*Node[string]{l.PushBack("a"), l.PushBack("b"), l.PushBack("c")}
			removed := nodes[tc.remove].Value
			assert.Equal(t, removed, l.Remove(nodes[tc.remove]))
			assert.Equal(t, tc.expected, slices.Collect(l.All()))
			assert.Equal(t, 2, l.Len())
			assert.Equal(t, tc.expected[0], l.Front().Value)
			assert.Equal(t, tc.expected[1], l.Back().Value)
		})
	}
}

func TestList_Remove_Foreign(t *testing.T) {
	a, b := New[int](), New[int]()
	n := a.PushBack(1)
	b.PushBack(2)
	assert.Equal(t, 0, b.Remove(n), "Foreign nodes should be ignored")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 0, b.Remove(nil))
}

func TestList_Remove_DuringIteration(t *testing.T) {
	l := New[int]()
	nodes := map[int]*Node[int]{}
	for i := 0; i < 5; i++ {
		nodes[i] = l.PushBack(i)
	}
	var seen []int
	for val := range l.All() {
		seen = append(seen, val)
		if val%2 == 0 {
			l.Remove(nodes[val])
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, []int{1, 3}, slices.Collect(l.All()))
}

func TestList_Clear(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Empty(t, slices.Collect(l.All()))

	l.PushBack(3)
	assert.Equal(t, []int{3}, slices.Collect(l.All()))
}
