// Package monitoring exposes long-running grid evaluations as a small web
// server: per-job progress, process resource usage, and on-demand CPU
// profiles.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// A Monitor watches evaluation jobs and serves their state over HTTP.
type Monitor struct {
	portNumber int
	actualPort int

	jobsLock     sync.Mutex
	jobs         []*Job
	progressBars []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the server listens on. Ports below 1000 are
// rejected and replaced by a random port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// StartServer starts serving in the background and returns the port it
// bound to.
func (m *Monitor) StartServer() int {
	r := mux.NewRouter()
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/jobs", m.listJobs)
	r.HandleFunc("/api/job/{id}", m.jobDetails)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	addr := ":0"
	if m.portNumber > 1000 {
		addr = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", addr)
	dieOnErr(err)

	m.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(os.Stderr,
		"Monitoring evaluation with http://localhost:%d\n", m.actualPort)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()

	return m.actualPort
}

// OpenDashboard opens the monitor in the default browser. The server must
// already be started.
func (m *Monitor) OpenDashboard() {
	if m.actualPort == 0 {
		log.Panic("the monitoring server is not running")
	}

	err := browser.OpenURL(
		"http://localhost:" + strconv.Itoa(m.actualPort))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
	}
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.jobsLock.Lock()
	bars := make([]*ProgressBar, len(m.progressBars))
	copy(bars, m.progressBars)
	m.jobsLock.Unlock()

	bytes, err := json.Marshal(bars)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listJobs(w http.ResponseWriter, _ *http.Request) {
	m.jobsLock.Lock()
	defer m.jobsLock.Unlock()

	fmt.Fprint(w, "[")
	for i, job := range m.jobs {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "\"%s\"", job.ID)
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) jobDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	job := m.findJobOr404(w, id)
	if job == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(job)
	serializer.SetMaxDepth(2)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findJobOr404(w http.ResponseWriter, id string) *Job {
	m.jobsLock.Lock()
	defer m.jobsLock.Unlock()

	for _, job := range m.jobs {
		if job.ID == id {
			return job
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("Job not found"))
	dieOnErr(err)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	out, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(out)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
