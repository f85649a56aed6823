package desktop

import (
	"bytes"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"ringgrid/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

const sfxVolume = 0.5

// Eat and game-over pitches climb one semitone per segment grown, up to
// maxSemitones above basePitch.
const (
	basePitch    = 440.0
	maxSemitones = 24
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundStart Sound = iota
	SoundEat
	SoundGameOver
	SoundPause
	SoundClear
)

var eventSounds = map[game.EventType]Sound{
	game.EventStarted:     SoundStart,
	game.EventTargetEaten: SoundEat,
	game.EventGameOver:    SoundGameOver,
	game.EventPaused:      SoundPause,
	game.EventResumed:     SoundPause,
	game.EventCleared:     SoundClear,
}

// Audio plays short procedural effects for session events.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}
	fixed map[Sound][]byte
}

func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready, fixed: make(map[Sound][]byte)}
	for _, s := range []Sound{SoundStart, SoundPause, SoundClear} {
		a.fixed[s] = generateSound(s, 0)
	}
	return a, nil
}

// Attach plays the matching effect for each bus event.
func (a *Audio) Attach(bus *game.EventBus) {
	types := make([]game.EventType, 0, len(eventSounds))
	for t := range eventSounds {
		types = append(types, t)
	}
	bus.Subscribe(func(e game.Event) { a.Play(eventSounds[e.Type], e.Count) }, types...)
}

// Play starts s for a snake of the given length without blocking. Sounds
// requested before the device is ready are dropped.
func (a *Audio) Play(s Sound, length int) {
	select {
	case <-a.ready:
	default:
		return
	}
	samples, ok := a.fixed[s]
	if !ok {
		samples = generateSound(s, length)
	}
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// lengthPitch is the note for a snake of the given length.
func lengthPitch(length int) float64 {
	st := length - game.SnakeStartLength
	if st < 0 {
		st = 0
	}
	if st > maxSemitones {
		st = maxSemitones
	}
	return basePitch * math.Pow(2, float64(st)/12)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(s Sound, length int) []byte {
	switch s {
	case SoundStart:
		return genSweep(0.065, 1400, -700, 0.38)
	case SoundEat:
		return genEat(length)
	case SoundGameOver:
		return genGameOver(length)
	case SoundPause:
		return genSweep(0.05, 660, 0, 0.25)
	case SoundClear:
		return genSweep(0.18, 900, -650, 0.3)
	}
	return nil
}

// genSweep is a short FM blip gliding from freq by glide Hz.
func genSweep(dur, freq, glide, gain float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		s := fm(t, freq+glide*p, 1.0, 0.6) * env * gain
		putStereoF32(buf, i, math.Tanh(s))
	}
	return buf
}

// genEat is a two-note pop: the previous length's note, then the new one.
func genEat(length int) []byte {
	from, to := lengthPitch(length-1), lengthPitch(length)
	n := int(0.11 * SampleRate)
	half := n / 2
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq, p := from, float64(i)/float64(half)
		if i >= half {
			freq, p = to, float64(i-half)/float64(n-half)
		}
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		s := fm(t, freq, 2.0, 2.5*env) * env * 0.45
		putStereoF32(buf, i, math.Tanh(s))
	}
	return buf
}

// genGameOver walks down from the snake's final note to the base note, one
// step per four segments, so longer games fall further.
func genGameOver(length int) []byte {
	steps := length / 4
	if steps < 2 {
		steps = 2
	}
	if steps > 6 {
		steps = 6
	}
	top := lengthPitch(length)
	const gap, tail = 0.09, 0.45
	n := int((gap*float64(steps-1) + tail) * SampleRate)
	mix := make([]float64, n)
	for k := 0; k < steps; k++ {
		freq := top * math.Pow(basePitch/top, float64(k)/float64(steps-1))
		start := int(gap * float64(k) * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.3, 0.25, 0.4)
			mix[i] += fm(t, freq, 2.0, 1.8*env) * env * 0.28
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, math.Tanh(s))
	}
	return buf
}
