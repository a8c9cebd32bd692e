package observer

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func recordList(t *testing.T, l *List[string], log *[]string) *ListObserver[string] {
	t.Helper()
	obs, err := l.Observe()
	require.NoError(t, err)
	require.NoError(t, obs.OnAdded(func(idx int, val string) error {
		*log = append(*log, fmt.Sprintf("added %d:%s", idx, val))
		return nil
	}))
	require.NoError(t, obs.OnRemoved(func(idx int, val string) error {
		*log = append(*log, fmt.Sprintf("removed %d:%s", idx, val))
		return nil
	}))
	require.NoError(t, obs.OnReplaced(func(idx int, oldVal, newVal string) error {
		*log = append(*log, fmt.Sprintf("replaced %d:%s>%s", idx, oldVal, newVal))
		return nil
	}))
	require.NoError(t, obs.OnCleared(func(removed []string) error {
		*log = append(*log, fmt.Sprintf("cleared %v", removed))
		return nil
	}))
	return obs
}

func TestList_Changes(t *testing.T) {
	var (
		l   = NewList([]string{"a"})
		log []string
	)
	recordList(t, l, &log)

	require.NoError(t, l.Add("c"))
	require.NoError(t, l.Insert(1, "b"))
	require.NoError(t, l.Set(0, "A"))
	val, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "c", val)
	assert.Equal(t, []string{"A", "b"}, l.Items())
	require.NoError(t, l.Clear())
	require.NoError(t, l.Clear())

	assert.Equal(t, []string{
		"added 1:c",
		"added 1:b",
		"replaced 0:a>A",
		"removed 2:c",
		"cleared [A b]",
	}, log)
	assert.Equal(t, 0, l.Len())
}

func TestList_Get(t *testing.T) {
	l := NewList([]int{1, 2})
	val, ok := l.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	_, ok = l.Get(2)
	assert.False(t, ok)
	_, ok = l.Get(-1)
	assert.False(t, ok)
}

func TestList_Items_Copy(t *testing.T) {
	src := []int{1, 2, 3}
	l := NewList(src)
	src[0] = 100
	items := l.Items()
	items[1] = 200
	assert.Equal(t, []int{1, 2, 3}, l.Items())
}

func TestList_OutOfRange(t *testing.T) {
	l := NewList([]int{1})
	tests := map[string]func() error{
		"Insert negative": func() error { return l.Insert(-1, 0) },
		"Insert past end": func() error { return l.Insert(2, 0) },
		"Set past end":    func() error { return l.Set(1, 0) },
		"RemoveAt negative": func() error {
			_, err := l.RemoveAt(-1)
			return err
		},
		"RemoveAt past end": func() error {
			_, err := l.RemoveAt(1)
			return err
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, fn(), ErrOutOfRange)
			assert.Equal(t, []int{1}, l.Items())
		})
	}
}

func TestList_ChangeFromObserver(t *testing.T) {
	var (
		l   = NewList[string](nil)
		log []string
	)
	first, err := l.Observe()
	require.NoError(t, err)
	require.NoError(t, first.OnAdded(func(idx int, val string) error {
		log = append(log, fmt.Sprintf("first added %d:%s", idx, val))
		if val == "a" {
			assert.NoError(t, l.Add("b"))
			assert.Equal(t, 2, l.Len())
		}
		return nil
	}))
	recordList(t, l, &log)

	require.NoError(t, l.Add("a"))
	assert.Equal(t, []string{
		"first added 0:a",
		"added 0:a",
		"first added 1:b",
		"added 1:b",
	}, log)
}

func TestListObserver_Close(t *testing.T) {
	var (
		l   = NewList[string](nil)
		log []string
	)
	obs := recordList(t, l, &log)
	require.NoError(t, l.Add("a"))
	require.NoError(t, obs.Close())
	assert.True(t, obs.Binding().Disposed())
	require.NoError(t, l.Add("b"))
	assert.Equal(t, []string{"added 0:a"}, log)
}

func TestListObserver_Error(t *testing.T) {
	l := NewList[int](nil)
	obs, err := l.Observe()
	require.NoError(t, err)
	require.NoError(t, obs.OnAdded(func(int, int) error {
		return errRejected
	}))
	assert.ErrorIs(t, l.Add(1), errRejected)
	assert.Equal(t, []int{1}, l.Items(), "The change should be applied even if an observer fails")
}
