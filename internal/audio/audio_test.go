package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			v := buf[j][0]
			if math.IsNaN(v) || v < -1.0001 || v > 1.0001 {
				t.Fatalf("Sample out of range: %f", v)
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer never finished")
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if n := drain(t, osc); n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 4)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("First sample of the attack should be silent, got %f", samples[0][0])
	}
	if math.Abs(samples[3][0]) >= 1 {
		t.Errorf("Attack should ramp up gradually, got %f", samples[3][0])
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	for c := range cueNotes {
		t.Run(c.String(), func(t *testing.T) {
			s := Synthesize(c, SampleRate, 0.5)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			if n := drain(t, s); n == 0 {
				t.Error("Cue produced no samples")
			}
		})
	}

	if Synthesize(Cue(99), SampleRate, 1) != nil {
		t.Error("Unknown cue should synthesize to nil")
	}
}

func TestCueFor(t *testing.T) {
	for _, name := range []string{"jump", "score", "game_over", "power_up_collected", "boss_hit"} {
		c, ok := CueFor(name)
		if !ok || c.String() != name {
			t.Errorf("CueFor(%q) = %v, %v", name, c, ok)
		}
	}
	if _, ok := CueFor("purchase"); ok {
		t.Error("Purchases have no cue")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1, false, nil)
	p.Play(CueJump)
	p.PlayEvent("score")
	p.Close()

	muted := NewPlayer(1, true, nil)
	if err := muted.Init(); err != nil {
		t.Errorf("Muted player should not open the speaker, got %v", err)
	}
	if !muted.Muted() {
		t.Error("Player should report muted")
	}
	muted.Play(CueGameOver)
}
