package recording

import (
	"log"

	"github.com/rs/xid"
)

// A RunMeta row describes one evaluation call.
type RunMeta struct {
	Run    string
	Mode   string
	NR     int
	NZ     int
	NPot   int
	Status int
}

// A Sample row holds one evaluated coordinate. J is -1 for paired runs.
type Sample struct {
	Run string
	I   int
	J   int
	R   float64
	Z   float64
	Phi float64
}

// A GridRecorder stores evaluation runs and their samples through a
// DataRecorder backend.
type GridRecorder struct {
	rec DataRecorder
}

// NewGridRecorder creates the runs and samples tables on the backend.
func NewGridRecorder(rec DataRecorder) *GridRecorder {
	rec.CreateTable("runs", RunMeta{})
	rec.CreateTable("samples", Sample{})

	return &GridRecorder{rec: rec}
}

// RecordGrid stores a row-major grid evaluation and returns the run ID.
// The status is the outcome of the evaluation call; on a nonzero status
// callers typically skip recording, but storing partial grids is allowed.
func (g *GridRecorder) RecordGrid(
	rs, zs, out []float64,
	nPot, status int,
) string {
	if len(out) != len(rs)*len(zs) {
		log.Panicf("grid of %d x %d cannot have %d samples",
			len(rs), len(zs), len(out))
	}

	run := xid.New().String()

	g.rec.InsertData("runs", RunMeta{
		Run:    run,
		Mode:   "grid",
		NR:     len(rs),
		NZ:     len(zs),
		NPot:   nPot,
		Status: status,
	})

	for i, r := range rs {
		for j, z := range zs {
			g.rec.InsertData("samples", Sample{
				Run: run,
				I:   i,
				J:   j,
				R:   r,
				Z:   z,
				Phi: out[i*len(zs)+j],
			})
		}
	}

	return run
}

// RecordPairs stores a paired evaluation and returns the run ID.
func (g *GridRecorder) RecordPairs(
	rs, zs, out []float64,
	nPot, status int,
) string {
	if len(zs) != len(rs) || len(out) != len(rs) {
		log.Panicf("paired run needs equal lengths, got %d/%d/%d",
			len(rs), len(zs), len(out))
	}

	run := xid.New().String()

	g.rec.InsertData("runs", RunMeta{
		Run:    run,
		Mode:   "pairs",
		NR:     len(rs),
		NZ:     len(rs),
		NPot:   nPot,
		Status: status,
	})

	for i := range rs {
		g.rec.InsertData("samples", Sample{
			Run: run,
			I:   i,
			J:   -1,
			R:   rs[i],
			Z:   zs[i],
			Phi: out[i],
		})
	}

	return run
}

// Flush forces buffered rows to the backend.
func (g *GridRecorder) Flush() {
	g.rec.Flush()
}
