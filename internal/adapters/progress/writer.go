package progress

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// tickWriter is a progrock.Writer that copies vertex output to out and ends the line
// once a vertex that wrote anything completes.
type tickWriter struct {
	mu   sync.Mutex
	out  io.Writer
	open map[string]bool
}

func newTickWriter(out io.Writer) *tickWriter {
	return &tickWriter{
		out:  out,
		open: make(map[string]bool),
	}
}

// WriteStatus renders one status update.
func (w *tickWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range update.GetLogs() {
		if len(l.GetData()) == 0 {
			continue
		}
		if _, err := w.out.Write(l.GetData()); err != nil {
			return err
		}
		w.open[l.GetVertex()] = true
	}

	for _, v := range update.GetVertexes() {
		if v.GetCompleted() == nil || !w.open[v.GetId()] {
			continue
		}
		delete(w.open, v.GetId())
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Close terminates any line left open by an unfinished vertex.
func (w *tickWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.open) == 0 {
		return nil
	}
	clear(w.open)
	_, err := io.WriteString(w.out, "\n")
	return err
}
