package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"

	"pomodoro/internal/core/pomodoro"
)

// PhaseChangeSoundURL is the chime played when a phase ends.
const PhaseChangeSoundURL = "https://bigsoundbank.com/UPLOAD/mp3/1482.mp3"

const maxSoundBytes = 4 << 20

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// SoundPlayer downloads a remote MP3 once and plays it through the speaker.
type SoundPlayer struct {
	url    string
	client *http.Client

	decode      decodeFunc
	initSpeaker func(beep.SampleRate) error
	play        func(beep.Streamer)

	mu          sync.Mutex
	buffer      *beep.Buffer
	speakerRate beep.SampleRate
}

// NewSoundPlayer creates a player for url. A nil client uses a 10s timeout client.
func NewSoundPlayer(url string, client *http.Client) *SoundPlayer {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SoundPlayer{
		url:    url,
		client: client,
		decode: mp3.Decode,
		initSpeaker: func(rate beep.SampleRate) error {
			return speaker.Init(rate, rate.N(time.Second/10))
		},
		play: func(streamer beep.Streamer) {
			speaker.Play(streamer)
		},
	}
}

// Notify plays the sound and logs failures.
func (player *SoundPlayer) Notify(ctx context.Context, _ pomodoro.Transition) {
	if err := player.Play(ctx); err != nil {
		log.Printf("phase change sound: %v", err)
	}
}

// Play starts playback and returns once the sound is queued.
func (player *SoundPlayer) Play(ctx context.Context) error {
	buffer, err := player.load(ctx)
	if err != nil {
		return err
	}

	player.mu.Lock()
	rate := player.speakerRate
	player.mu.Unlock()

	var streamer beep.Streamer = buffer.Streamer(0, buffer.Len())
	if buffer.Format().SampleRate != rate {
		streamer = beep.Resample(4, buffer.Format().SampleRate, rate, streamer)
	}
	player.play(streamer)
	return nil
}

func (player *SoundPlayer) load(ctx context.Context) (*beep.Buffer, error) {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.buffer != nil {
		return player.buffer, nil
	}

	data, err := player.fetch(ctx)
	if err != nil {
		return nil, err
	}

	streamer, format, err := player.decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode sound: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode sound: %w", err)
	}

	if player.speakerRate == 0 {
		if err := player.initSpeaker(format.SampleRate); err != nil {
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		player.speakerRate = format.SampleRate
	}

	player.buffer = buffer
	return buffer, nil
}

func (player *SoundPlayer) fetch(ctx context.Context) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, player.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build sound request: %w", err)
	}
	response, err := player.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch sound: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sound: unexpected status %s", response.Status)
	}
	data, err := io.ReadAll(io.LimitReader(response.Body, maxSoundBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read sound: %w", err)
	}
	if len(data) > maxSoundBytes {
		return nil, fmt.Errorf("read sound: body exceeds %d bytes", maxSoundBytes)
	}
	return data, nil
}
