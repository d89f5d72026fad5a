package util_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/chainseq/pkg/util"
)

func TestIsNil(t *testing.T) {
	require.True(t, util.IsNil(nil))

	var p *int
	require.True(t, util.IsNil(p))

	var m map[string]int
	require.True(t, util.IsNil(m))

	var s []int
	require.True(t, util.IsNil(s))

	var ch chan int
	require.True(t, util.IsNil(ch))

	var fn func()
	require.True(t, util.IsNil(fn))
}

func TestIsNilOnValues(t *testing.T) {
	require.False(t, util.IsNil(0))
	require.False(t, util.IsNil(""))
	require.False(t, util.IsNil(struct{}{}))

	v := 1
	require.False(t, util.IsNil(&v))
	require.False(t, util.IsNil(map[string]int{}))
	require.False(t, util.IsNil([]int{}))
}

func TestHashBytesIsStable(t *testing.T) {
	a := util.HashBytes([]byte("payload"))
	b := util.HashBytes([]byte("payload"))
	require.Equal(t, a, b)
	require.Len(t, a, 16)

	require.NotEqual(t, a, util.HashBytes([]byte("other")))
}
