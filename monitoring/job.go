package monitoring

import (
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/galdyn/potgrid/potential"
)

// Job statuses reported through the web API.
const (
	JobRunning = "running"
	JobDone    = "done"
	JobFailed  = "failed"
)

// A Job is one watched evaluation call: its shape, its progress bar, and
// its final outcome.
type Job struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode string `json:"mode"`
	NR   int    `json:"n_r"`
	NZ   int    `json:"n_z"`

	statusLock sync.Mutex
	Status     string `json:"status"`
	Failure    string `json:"failure,omitempty"`

	bar *ProgressBar
}

// NewJob registers a watched evaluation with the monitor. The returned job
// starts in the running state with one progress unit per outer row.
func (m *Monitor) NewJob(name, mode string, nR, nZ int) *Job {
	job := &Job{
		ID:     xid.New().String(),
		Name:   name,
		Mode:   mode,
		NR:     nR,
		NZ:     nZ,
		Status: JobRunning,
	}

	job.bar = &ProgressBar{
		ID:        job.ID,
		Name:      name,
		StartTime: time.Now(),
		Total:     uint64(nR),
	}

	m.jobsLock.Lock()
	defer m.jobsLock.Unlock()

	m.jobs = append(m.jobs, job)
	m.progressBars = append(m.progressBars, job.bar)

	return job
}

// RowHook returns a hook that advances the job's progress bar, suitable for
// passing to the hooked grid walker.
func (j *Job) RowHook() potential.RowHook {
	return func(int) {
		j.bar.Add(1)
	}
}

// Complete records the evaluation outcome on the job.
func (j *Job) Complete(err error) {
	j.statusLock.Lock()
	defer j.statusLock.Unlock()

	if err != nil {
		j.Status = JobFailed
		j.Failure = err.Error()
		return
	}

	j.Status = JobDone
}
