package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupCancelsOnFirstError(t *testing.T) {
	var g = NewGroup(context.Background())

	g.Queue("waits", func() error {
		<-g.Context().Done()
		return nil
	})
	g.Queue("fails", func() error { return errors.New("whoops") })
	g.GoRun()

	require.EqualError(t, g.Wait(), "fails: whoops")
	require.Equal(t, context.Canceled, g.Context().Err())
}

func TestGroupCancel(t *testing.T) {
	var g = NewGroup(context.Background())
	g.Queue("waits", func() error {
		<-g.Context().Done()
		return nil
	})
	g.GoRun()
	g.Cancel()

	require.NoError(t, g.Wait())
	require.Panics(t, func() { g.GoRun() })
	require.Panics(t, func() { g.Queue("late", nil) })
}
