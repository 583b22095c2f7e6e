package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	H  []int   `json:"h,omitempty"`  // Held keys
	P  []int   `json:"p,omitempty"`  // Just-pressed keys
	DX float64 `json:"dx,omitempty"` // Mouse motion X
	DY float64 `json:"dy,omitempty"` // Mouse motion Y
	MX int     `json:"mx"`           // MouseX
	MY int     `json:"my"`           // MouseY
	MD bool    `json:"md,omitempty"` // Left button down
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Session   string       `json:"session"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is the replay format written by Recorder
const Version = "2.0"
