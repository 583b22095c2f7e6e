package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/application/system"
)

// Replayer handles input playback from recorded data.
// It implements system.Source; once the frames run out every poll is idle.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the input for the current frame and advances (implements system.Source)
func (r *Replayer) Poll() system.RawInput {
	if r.Done() {
		return system.RawInput{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	raw := system.RawInput{
		Held:      keys(fi.H),
		Pressed:   keys(fi.P),
		CursorX:   fi.MX,
		CursorY:   fi.MY,
		MouseDown: fi.MD,
	}
	if fi.DX != 0 || fi.DY != 0 {
		raw.Motion = []mgl64.Vec2{{fi.DX, fi.DY}}
	}
	return raw
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle input)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Session:   "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}

func keys(codes []int) []ebiten.Key {
	if len(codes) == 0 {
		return nil
	}
	out := make([]ebiten.Key, len(codes))
	for i, c := range codes {
		out[i] = ebiten.Key(c)
	}
	return out
}
