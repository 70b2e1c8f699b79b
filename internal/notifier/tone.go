package notifier

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/google/uuid"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

const (
	// toneSampleRate is the output sample rate in Hz.
	toneSampleRate = 44100
	// toneChannels is the number of interleaved output channels.
	toneChannels = 2
	// toneBytesPerSample matches oto.FormatSignedInt16LE.
	toneBytesPerSample = 2
	// toneFrameSize is the byte size of one sample across all channels.
	toneFrameSize = toneChannels * toneBytesPerSample
	// toneBeepFrames is the length of one beep; the pause after it is equal.
	toneBeepFrames = toneSampleRate / 2
)

// Tone plays a generated beep pattern through the default audio device for
// as long as an alarm rings.
//
// The oto context can only be created once per process, so it is created
// lazily on the first Ring and shared by all players.
type Tone struct {
	// frequency is the beep pitch in Hz.
	frequency float64
	// volume scales the amplitude, from 0 to 1.
	volume float64

	// once guards audio context creation.
	once sync.Once
	// audio is the shared oto context, nil until the first Ring.
	audio *oto.Context
	// audioErr is the context creation failure, if any.
	audioErr error

	// players holds the player of every ringing alarm.
	players map[uuid.UUID]*oto.Player
	// mu protects players.
	mu sync.Mutex
}

// NewTone returns a tone notifier. No audio device is touched until Ring.
func NewTone(frequency, volume float64) *Tone {
	return &Tone{
		frequency: frequency,
		volume:    volume,
		players:   make(map[uuid.UUID]*oto.Player),
	}
}

// Ring starts a looping beep for the alarm.
func (t *Tone) Ring(ctx context.Context, a *alarm.Alarm) error {
	audio, err := t.context(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players[a.ID]; ok {
		return nil
	}

	player := audio.NewPlayer(newBeepReader(t.frequency, t.volume, toneSampleRate))
	player.Play()

	t.players[a.ID] = player

	return nil
}

// Silence stops the beep for the alarm.
func (t *Tone) Silence(_ context.Context, a *alarm.Alarm) error {
	t.mu.Lock()
	player, ok := t.players[a.ID]
	delete(t.players, a.ID)
	t.mu.Unlock()

	if !ok {
		return nil
	}

	player.Pause()

	if err := player.Close(); err != nil {
		return fmt.Errorf("close tone player: %w", err)
	}

	return nil
}

// Close stops every beep.
func (t *Tone) Close() error {
	t.mu.Lock()
	players := t.players
	t.players = make(map[uuid.UUID]*oto.Player)
	t.mu.Unlock()

	var firstErr error

	for _, player := range players {
		player.Pause()

		if err := player.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close tone player: %w", err)
		}
	}

	return firstErr
}

// context creates the shared oto context on first use and waits for the
// audio device to become ready.
func (t *Tone) context(ctx context.Context) (*oto.Context, error) {
	t.once.Do(func() {
		options := &oto.NewContextOptions{
			SampleRate:   toneSampleRate,
			ChannelCount: toneChannels,
			Format:       oto.FormatSignedInt16LE,
		}

		audio, ready, err := oto.NewContext(options)
		if err != nil {
			t.audioErr = fmt.Errorf("initialize audio context: %w", err)
			logger.ErrorKV(ctx, "Audio context unavailable", "error", err)

			return
		}

		// Wait for the hardware audio devices to be ready.
		<-ready

		t.audio = audio

		logger.Info(ctx, "Audio context initialized")
	})

	return t.audio, t.audioErr
}

// beepReader is an endless stream of 16-bit little-endian stereo PCM:
// a sine beep followed by an equally long silence, repeated.
type beepReader struct {
	// step is the phase increment per frame in radians.
	step float64
	// amplitude is the peak sample value.
	amplitude float64
	// frame counts frames produced so far, modulo one beep period.
	frame int
}

// newBeepReader returns a beep stream at the given pitch and volume.
func newBeepReader(frequency, volume float64, sampleRate int) *beepReader {
	return &beepReader{
		step:      2 * math.Pi * frequency / float64(sampleRate),
		amplitude: math.MaxInt16 * math.Max(0, math.Min(1, volume)),
	}
}

// Read fills p with whole frames. It never returns io.EOF.
func (r *beepReader) Read(p []byte) (int, error) {
	frames := len(p) / toneFrameSize

	for i := range frames {
		var sample int16
		if r.frame < toneBeepFrames {
			sample = int16(r.amplitude * math.Sin(r.step*float64(r.frame)))
		}

		offset := i * toneFrameSize
		for ch := range toneChannels {
			binary.LittleEndian.PutUint16(p[offset+ch*toneBytesPerSample:], uint16(sample))
		}

		r.frame = (r.frame + 1) % (2 * toneBeepFrames)
	}

	return frames * toneFrameSize, nil
}
