package progress

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/carry/internal/ui/style"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Tick records one progress tick on the vertex output.
func (v *Vertex) Tick() {
	_, _ = io.WriteString(v.vertex.Stdout(), style.Tick)
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
