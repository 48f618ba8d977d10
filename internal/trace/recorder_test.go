package trace

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/libcore/internal/core"
	"github.com/roach88/libcore/internal/platform"
)

func TestRecorder_ForwardsAndRecords(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(platform.NewConsole(&buf), nil)

	seq := core.New(rec)
	seq.Init()
	seq.Run()
	seq.Shutdown()
	seq.Run()

	want := []Event{
		{Seq: 1, Op: OpInit},
		{Seq: 2, Op: OpPrint, Message: core.MsgRunning},
		{Seq: 3, Op: OpPrint, Message: core.MsgShuttingDown},
		{Seq: 4, Op: OpShutdown},
	}
	if diff := cmp.Diff(want, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t,
		platform.ConsoleInitLine+core.MsgRunning+core.MsgShuttingDown+platform.ConsoleShutdownLine,
		buf.String())
}

func TestRecorder_StubStillRecords(t *testing.T) {
	rec := NewRecorder(platform.Stub{}, nil)

	seq := core.New(rec)
	seq.Init()
	seq.Shutdown()

	assert.Equal(t, []Op{OpInit, OpPrint, OpShutdown}, rec.Session("s", platform.BackendStub).Ops())
}

func TestRecorder_SharedClockContinues(t *testing.T) {
	clock := NewClock()
	clock.Next()
	clock.Next()
	rec := NewRecorder(platform.Stub{}, clock)

	rec.Init()

	require.Len(t, rec.Events(), 1)
	assert.Equal(t, int64(3), rec.Events()[0].Seq)
	assert.Equal(t, int64(3), clock.Current())
}

func TestRecorder_EventsReturnsCopy(t *testing.T) {
	rec := NewRecorder(platform.Stub{}, nil)
	rec.Print("a")

	events := rec.Events()
	events[0].Message = "mutated"

	assert.Equal(t, "a", rec.Events()[0].Message)
}

func TestNewRecorder_NilPlatformPanics(t *testing.T) {
	assert.Panics(t, func() { NewRecorder(nil, nil) })
}

func TestSession_Helpers(t *testing.T) {
	s := Session{
		ID:      "s-1",
		Backend: platform.BackendUnix,
		Events: []Event{
			{Seq: 1, Op: OpInit},
			{Seq: 2, Op: OpPrint, Message: "a"},
			{Seq: 3, Op: OpPrint, Message: "b\n"},
			{Seq: 4, Op: OpShutdown},
		},
	}

	assert.Equal(t, []Op{OpInit, OpPrint, OpPrint, OpShutdown}, s.Ops())
	assert.Equal(t, 2, s.Count(OpPrint))
	assert.Equal(t, 1, s.Count(OpInit))
	assert.Equal(t, 0, Session{}.Count(OpInit))
	assert.Equal(t, "ab\n", s.Printed())
}

func TestClock(t *testing.T) {
	c := NewClock()
	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next())
	assert.Equal(t, int64(2), c.Next())
	assert.Equal(t, int64(2), c.Current())
}

func TestFixedGenerator(t *testing.T) {
	g := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", g.Generate())
	assert.Equal(t, "b", g.Generate())
	assert.PanicsWithValue(t, "FixedGenerator: all ids exhausted", func() { g.Generate() })
}

func TestUUIDv7Generator(t *testing.T) {
	var g UUIDv7Generator
	a, b := g.Generate(), g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "version nibble")
	assert.LessOrEqual(t, a, b, "UUIDv7 sorts by creation time")
}
