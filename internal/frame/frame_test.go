package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualComparesTextAndTone(t *testing.T) {
	a := Frame{Plain("TIME: 10:00", ToneTime), {{Text: "x", Tone: ToneDay}, {Text: "y", Tone: ToneDay}}}
	b := Frame{Plain("TIME: 10:00", ToneTime), {{Text: "x", Tone: ToneDay}, {Text: "y", Tone: ToneDay}}}
	assert.True(t, a.Equal(b))

	toneChanged := a.Clone()
	toneChanged[1][1].Tone = ToneOverflow
	assert.False(t, a.Equal(toneChanged))

	textChanged := a.Clone()
	textChanged[0][0].Text = "TIME: 10:01"
	assert.False(t, a.Equal(textChanged))

	assert.False(t, a.Equal(a[:1]))
	assert.False(t, a.Equal(Frame{a[0], {{Text: "xy", Tone: ToneDay}}}))
	assert.True(t, Frame(nil).Equal(Frame{}))
}

func TestCloneIsDeep(t *testing.T) {
	a := Frame{Plain("one", ToneText)}
	c := a.Clone()
	c[0][0].Text = "two"
	assert.Equal(t, "one", a[0][0].Text)
}

func TestString(t *testing.T) {
	f := Frame{
		{{Text: "a", Tone: ToneText}, {Text: "b", Tone: ToneTitle}},
		Line{},
		Plain("c", ToneMuted),
	}
	assert.Equal(t, "ab\n\nc", f.String())
}
