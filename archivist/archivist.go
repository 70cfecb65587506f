package archivist

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/samgozman/orc-brief/pkg/errlvl"
	"github.com/samgozman/orc-brief/pkg/kst"
)

const (
	DefaultDir = "./out"
	ReportFile = "daily_report.txt"
	StateFile  = "save_state.json"
)

// State is the status record of the latest run. Only the latest run is kept.
type State struct {
	LastBoot   string `json:"last_boot"`   // LastBoot is the run time in KST, ISO-8601 with offset
	ReportPath string `json:"report_path"` // ReportPath is where the report was written
}

// NewState creates the status record for a run that started at t.
func NewState(t time.Time, reportPath string) *State {
	return &State{
		LastBoot:   kst.ISO(t),
		ReportPath: reportPath,
	}
}

// Archivist is responsible for storing the brief on disk. Every write overwrites the previous run.
type Archivist struct {
	dir string
}

// NewArchivist creates a new Archivist writing into dir.
func NewArchivist(dir string) *Archivist {
	if dir == "" {
		dir = DefaultDir
	}
	return &Archivist{dir: dir}
}

// ReportPath returns the path of the report file.
func (a *Archivist) ReportPath() string {
	return filepath.Join(a.dir, ReportFile)
}

// StatePath returns the path of the status record.
func (a *Archivist) StatePath() string {
	return filepath.Join(a.dir, StateFile)
}

// SaveReport writes the report text and returns its path.
func (a *Archivist) SaveReport(text string) (string, error) {
	if err := a.ensureDir(); err != nil {
		return "", err
	}

	path := a.ReportPath()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", newError(errlvl.FATAL, errWriteReport, err)
	}

	return path, nil
}

// SaveState writes the status record as indented JSON. Non-ASCII text is kept as is.
func (a *Archivist) SaveState(s *State) error {
	if err := a.ensureDir(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return newError(errlvl.ERROR, errEncodeState, err)
	}

	if err := os.WriteFile(a.StatePath(), buf.Bytes(), 0o644); err != nil {
		return newError(errlvl.FATAL, errWriteState, err)
	}

	return nil
}

// LoadState reads the status record written by SaveState.
func (a *Archivist) LoadState() (*State, error) {
	data, err := os.ReadFile(a.StatePath())
	if err != nil {
		return nil, newError(errlvl.INFO, errReadState, err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, newError(errlvl.WARN, errReadState, err)
	}

	return &s, nil
}

func (a *Archivist) ensureDir() error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return newError(errlvl.FATAL, errCreateDir, err)
	}
	return nil
}
