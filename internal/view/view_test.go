package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	s := NewState()
	assert.Equal(t, Main, s.Current)
	assert.False(t, s.ShowRemaining)
}

func TestCycleFollowsRing(t *testing.T) {
	s := NewState()
	for n := 1; n <= 2*RingSize+1; n++ {
		changed, quit := s.Apply(Cycle)
		assert.True(t, changed)
		assert.False(t, quit)
		assert.Equal(t, ring[n%RingSize], s.Current, "after %d cycles", n)
	}
}

func TestFullCycleReturnsToMain(t *testing.T) {
	s := NewState()
	for i := 0; i < RingSize; i++ {
		s.Apply(Cycle)
	}
	assert.Equal(t, Main, s.Current)
}

func TestOrder(t *testing.T) {
	assert.Equal(t, TimeLimits, Main.Next())
	assert.Equal(t, TimeBlocks, TimeLimits.Next())
	assert.Equal(t, Main, TimeBlocks.Next())
}

func TestToggleOnlyFlipsBit(t *testing.T) {
	s := State{Current: TimeBlocks}
	changed, quit := s.Apply(Toggle)
	assert.True(t, changed)
	assert.False(t, quit)
	assert.True(t, s.ShowRemaining)
	assert.Equal(t, TimeBlocks, s.Current)

	s.Apply(Toggle)
	assert.False(t, s.ShowRemaining)
}

func TestQuitSignalsWithoutChangingState(t *testing.T) {
	for _, in := range []Input{Quit, ForceQuit} {
		s := State{Current: TimeLimits, ShowRemaining: true}
		changed, quit := s.Apply(in)
		assert.False(t, changed, in.String())
		assert.True(t, quit, in.String())
		assert.Equal(t, State{Current: TimeLimits, ShowRemaining: true}, s)
	}
}

func TestUnrecognizedIsNoop(t *testing.T) {
	s := NewState()
	changed, quit := s.Apply(Unrecognized)
	assert.False(t, changed)
	assert.False(t, quit)
	assert.Equal(t, NewState(), s)

	changed, quit = s.Apply(Input(42))
	assert.False(t, changed)
	assert.False(t, quit)
}

func TestParse(t *testing.T) {
	for _, v := range ring {
		got, ok := Parse(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := Parse("sideways")
	assert.False(t, ok)
}
