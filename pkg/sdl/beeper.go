package sdl

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate   = 44100
	toneFreq     = 440
	amplitude    = 0x30
	bufferLength = 2048
)

// Beeper plays a square wave tone while the sound timer of the VM is
// running.
type Beeper struct {
	id      sdl.AudioDeviceID
	tone    []uint8
	playing bool
}

// NewBeeper opens the default audio device.
func NewBeeper() (*Beeper, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  bufferLength,
	}

	var actualSpec sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}

	b := &Beeper{
		id:   id,
		tone: squareWave(bufferLength, int(actualSpec.Freq)/toneFreq, actualSpec.Silence),
	}
	sdl.PauseAudioDevice(id, false)
	return b, nil
}

// squareWave returns samples of a square wave with the given period in
// samples, centered around silence.
func squareWave(samples, period int, silence uint8) []uint8 {
	if period < 2 {
		period = 2
	}
	wave := make([]uint8, samples)
	for i := range wave {
		if i%period < period/2 {
			wave[i] = silence + amplitude
		} else {
			wave[i] = silence - amplitude
		}
	}
	return wave
}

// Update starts or stops the tone. It has to be called at least once per
// frame to keep the audio queue filled.
func (b *Beeper) Update(on bool) error {
	if !on {
		if b.playing {
			sdl.ClearQueuedAudio(b.id)
			b.playing = false
		}
		return nil
	}

	b.playing = true
	if sdl.GetQueuedAudioSize(b.id) < uint32(len(b.tone)) {
		return sdl.QueueAudio(b.id, b.tone)
	}
	return nil
}

// Close releases the audio device.
func (b *Beeper) Close() {
	sdl.CloseAudioDevice(b.id)
}
