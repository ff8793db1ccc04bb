// Package progress records long-running steps with progrock and renders them as a
// line of ticks suitable for CI logs.
package progress

import (
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/carry/internal/core/ports"
)

// Recorder implements ports.Progress on a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder that renders ticks to out.
func New(out io.Writer) *Recorder {
	return NewRecorder(newTickWriter(out))
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(name string) ports.Vertex {
	v := r.rec.Vertex(digest.FromString(name), name)
	return &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
