package clipboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_WriteThenRead(t *testing.T) {
	cb := &Memory{}

	res := Run(cb, Write("hello"))
	require.NoError(t, res.Err)
	require.Equal(t, "hello", cb.Text())

	var got string
	res = Run(cb, Read(func(s string) { got = s }))
	require.NoError(t, res.Err)
	require.True(t, Apply(res))
	require.Equal(t, "hello", got)
}

func TestRun_FailureIsIgnoredByApply(t *testing.T) {
	cb := &Memory{Fail: errors.New("denied")}

	called := false
	res := Run(cb, Read(func(string) { called = true }))
	require.Error(t, res.Err)
	require.False(t, Apply(res))
	require.False(t, called)
}

func TestRun_NilClipboardIsUnavailable(t *testing.T) {
	res := Run(nil, Write("x"))
	require.ErrorIs(t, res.Err, ErrUnavailable)
}

func TestCmd_ProducesResultMsg(t *testing.T) {
	cb := &Memory{}
	msg := Cmd(cb, Write("copied"))()
	res, ok := msg.(Result)
	require.True(t, ok)
	require.NoError(t, res.Err)
	require.Equal(t, "copied", cb.Text())

	require.Nil(t, Cmds(cb, nil))
}

func TestGo_DeliversInOrder(t *testing.T) {
	cb := &Memory{}
	out := make(chan Result, 2)
	Go(cb, []Request{Write("a"), Read(nil)}, out)

	for _, want := range []Op{OpWrite, OpRead} {
		select {
		case res := <-out:
			require.Equal(t, want, res.Request.Op)
		case <-time.After(time.Second):
			require.FailNow(t, "no result")
		}
	}
}
