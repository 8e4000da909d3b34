package recorder

// RenderEvent holds the summary of one completed chart render.
type RenderEvent struct {
	Rows       int
	RelMin     float64
	RelMax     float64
	FluctMin   float64
	FluctMax   float64
	OutputPath string
	Note       string
}

// Recorder persists render history for analysis.
type Recorder interface {
	RecordRender(evt *RenderEvent) error
	Close() error
}
