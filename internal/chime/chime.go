// Package chime plays a short tone when a timer reaches its deadline.
package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio parameters for the synthesized tone.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// Note is one tone in a chime.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// DefaultChime is a rising two-note bell.
var DefaultChime = []Note{
	{Freq: 880, Duration: 160 * time.Millisecond},
	{Freq: 1318.5, Duration: 260 * time.Millisecond},
}

// Synthesize renders notes as signed 16-bit little-endian mono PCM. Each
// note decays exponentially so consecutive notes don't click.
func Synthesize(notes []Note, volume float64) []byte {
	volume = math.Min(math.Max(volume, 0), 1)

	var total int
	for _, n := range notes {
		total += samples(n.Duration)
	}
	pcm := make([]byte, 0, total*2)

	for _, n := range notes {
		count := samples(n.Duration)
		for i := 0; i < count; i++ {
			t := float64(i) / SampleRate
			decay := math.Exp(-4 * float64(i) / float64(count))
			v := volume * decay * math.Sin(2*math.Pi*n.Freq*t)
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(int16(v*math.MaxInt16)))
		}
	}
	return pcm
}

func samples(d time.Duration) int {
	return int(d * SampleRate / time.Second)
}
