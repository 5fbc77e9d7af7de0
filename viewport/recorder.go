package viewport

import "github.com/gekko3d/gizmo"

type Batch struct {
	Lines    bool
	Vertices []gizmo.Vertex
}

// Recorder collects the vertex batches written during a frame. Buffers
// handed out stay valid until Reset.
type Recorder struct {
	batches []Batch
}

func (r *Recorder) Render(lines bool, count int) []gizmo.Vertex {
	if count <= 0 {
		return nil
	}
	var v []gizmo.Vertex
	if n := len(r.batches); n < cap(r.batches) {
		// reuse the storage of a batch dropped by Reset
		if old := r.batches[:n+1][n].Vertices; cap(old) >= count {
			v = old[:count]
			clear(v)
		}
	}
	if v == nil {
		v = make([]gizmo.Vertex, count)
	}
	r.batches = append(r.batches, Batch{Lines: lines, Vertices: v})
	return v
}

func (r *Recorder) Batches() []Batch {
	return r.batches
}

// Lines returns every line vertex of the frame in submission order.
func (r *Recorder) Lines() []gizmo.Vertex {
	return r.collect(true)
}

// Triangles returns every triangle vertex of the frame in submission order.
func (r *Recorder) Triangles() []gizmo.Vertex {
	return r.collect(false)
}

func (r *Recorder) collect(lines bool) []gizmo.Vertex {
	var out []gizmo.Vertex
	for _, b := range r.batches {
		if b.Lines == lines {
			out = append(out, b.Vertices...)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.batches = r.batches[:0]
}
