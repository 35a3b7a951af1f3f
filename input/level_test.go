package input_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padclick/input"
	th "github.com/Alia5/padclick/internal/testing"
)

func pollAll(t *testing.T, s input.Source, n int) [][]input.Event {
	t.Helper()
	out := make([][]input.Event, 0, n)
	for i := 0; i < n; i++ {
		evs, err := s.Poll()
		require.NoError(t, err)
		out = append(out, evs)
	}
	return out
}

func TestLevelSourceEmitsOnlyRisingEdges(t *testing.T) {
	reader := &th.LevelFrames{Frames: [][]bool{
		{false, false},
		{true, false},
		{true, false},
		{false, false},
		{true, true},
	}}
	src := input.NewLevelSource(reader, slog.Default())

	got := pollAll(t, src, 5)
	assert.Empty(t, got[0])
	assert.Equal(t, []input.Event{input.ButtonPress("j:0")}, got[1])
	assert.Empty(t, got[2], "sustained press must not repeat")
	assert.Empty(t, got[3])
	assert.Equal(t, []input.Event{input.ButtonPress("j:0"), input.ButtonPress("j:1")}, got[4])
}

func TestLevelSourceSingleEdgeAcrossCycles(t *testing.T) {
	// button 0 held through two cycles, then released and re-read as held
	reader := &th.LevelFrames{Frames: [][]bool{{false}, {true}, {true}, {false}}}
	src := input.NewLevelSource(reader, slog.Default())

	presses := 0
	for _, batch := range pollAll(t, src, 4) {
		presses += len(batch)
	}
	assert.Equal(t, 1, presses)

	reader.Frames = append(reader.Frames, []bool{false}, []bool{true})
	presses = 0
	for _, batch := range pollAll(t, src, 2) {
		presses += len(batch)
	}
	assert.Equal(t, 1, presses)
}

func TestLevelSourceStartsReleased(t *testing.T) {
	reader := &th.LevelFrames{Frames: [][]bool{{true}}}
	src := input.NewLevelSource(reader, slog.Default())

	evs, err := src.Poll()
	require.NoError(t, err)
	assert.Equal(t, []input.Event{input.ButtonPress("j:0")}, evs)
}

func TestLevelSourceScansAtMostMaxButtons(t *testing.T) {
	frame := make([]bool, input.MaxButtons+8)
	for i := range frame {
		frame[i] = true
	}
	src := input.NewLevelSource(&th.LevelFrames{Frames: [][]bool{frame}}, slog.Default())

	evs, err := src.Poll()
	require.NoError(t, err)
	assert.Len(t, evs, input.MaxButtons)
	assert.Equal(t, "j:31", evs[len(evs)-1].ID)
}

func TestLevelSourceQuitFollowsPresses(t *testing.T) {
	reader := &th.LevelFrames{Frames: [][]bool{{true}}, QuitAt: 1}
	src := input.NewLevelSource(reader, slog.Default())

	evs, err := src.Poll()
	require.NoError(t, err)
	assert.Equal(t, []input.Event{input.ButtonPress("j:0"), input.Quit()}, evs)
}

func TestLevelSourceErrors(t *testing.T) {
	t.Run("transient error yields no events", func(t *testing.T) {
		reader := &th.LevelFrames{Frames: [][]bool{{true}, {true}}, ErrAt: 1, Err: errors.New("hiccup")}
		src := input.NewLevelSource(reader, slog.Default())

		evs, err := src.Poll()
		assert.NoError(t, err)
		assert.Empty(t, evs)
	})

	t.Run("device lost is returned", func(t *testing.T) {
		reader := &th.LevelFrames{Frames: [][]bool{{false}}, ErrAt: 1, Err: input.ErrDeviceLost}
		src := input.NewLevelSource(reader, slog.Default())

		_, err := src.Poll()
		assert.ErrorIs(t, err, input.ErrDeviceLost)
	})
}

func TestLevelSourceHeld(t *testing.T) {
	reader := &th.LevelFrames{Frames: [][]bool{{true, false, true}}}
	src := input.NewLevelSource(reader, slog.Default())

	_, err := src.Refresh()
	require.NoError(t, err)
	assert.Equal(t, []string{"j:0", "j:2"}, src.Held())

	require.NoError(t, src.Close())
	assert.True(t, reader.Closed)
}
