// Package session records player events to JSONL log files.
package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nailbox"
)

// FormatVersion is written to every log header.
const FormatVersion = "1.0"

// Event is a single logged player event.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	ElapsedMs   int64     `json:"elapsed_ms"`
	Kind        string    `json:"kind"`
	Input       string    `json:"input,omitempty"`
	Step        int       `json:"step"`
	Total       int       `json:"total"`
	Instruction string    `json:"instruction,omitempty"`
	ShowAll     bool      `json:"show_all,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// header is the first line of every log.
type header struct {
	Type         string    `json:"type"`
	Version      string    `json:"version"`
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	SequenceFile string    `json:"sequence_file,omitempty"`
	NailsPerSide int       `json:"nails_per_side"`
}

// Log is a complete session log.
type Log struct {
	Version      string
	SessionID    string
	CreatedAt    time.Time
	SequenceFile string
	NailsPerSide int
	Events       []Event
}

// Logger appends player events to a log file. A zero Logger, or one that
// was never started, discards everything.
type Logger struct {
	sessionID string
	startTime time.Time
	file      *os.File
	enabled   bool
}

// NewLogger creates a disabled logger.
func NewLogger() *Logger {
	return &Logger{}
}

// Start begins logging to a new file in logDir.
func (l *Logger) Start(logDir, sequenceFile string, nailsPerSide int) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	l.startTime = time.Now()
	l.sessionID = uuid.New().String()

	filename := fmt.Sprintf("session_%s_%s.jsonl", l.startTime.Format("20060102_150405"), l.sessionID[:8])
	file, err := os.Create(filepath.Join(logDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	l.file = file
	l.enabled = true

	return l.writeJSON(header{
		Type:         "header",
		Version:      FormatVersion,
		SessionID:    l.sessionID,
		CreatedAt:    l.startTime,
		SequenceFile: sequenceFile,
		NailsPerSide: nailsPerSide,
	})
}

// SessionID returns the id of the running session, or "".
func (l *Logger) SessionID() string {
	return l.sessionID
}

// LogEvent records ev, the status it produced and any error.
func (l *Logger) LogEvent(ev nailbox.Event, status nailbox.Status, evErr error) error {
	if !l.enabled || l.file == nil {
		return nil
	}

	now := time.Now()
	e := Event{
		Timestamp:   now,
		ElapsedMs:   now.Sub(l.startTime).Milliseconds(),
		Kind:        kindOf(ev),
		Input:       inputOf(ev),
		Step:        status.Step,
		Total:       status.Total,
		Instruction: status.Instruction,
		ShowAll:     status.ShowAll,
	}
	if evErr != nil {
		e.Error = evErr.Error()
	}
	return l.writeJSON(e)
}

func kindOf(ev nailbox.Event) string {
	if ev == nil {
		return "unknown"
	}
	return ev.Kind()
}

// inputOf returns the user-supplied part of ev. File contents are
// summarised rather than copied.
func inputOf(ev nailbox.Event) string {
	switch e := ev.(type) {
	case nailbox.JumpEvent:
		return e.Input
	case nailbox.LoadEvent:
		return fmt.Sprintf("%d bytes", len(e.Contents))
	case nailbox.ShowAllEvent:
		if e.On {
			return "on"
		}
		return "off"
	default:
		return ""
	}
}

func (l *Logger) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = l.file.Write(append(data, '\n'))
	return err
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.enabled = false
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// FilePath returns the current log file path.
func (l *Logger) FilePath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}

// Load reads a session log written by Logger.
func Load(path string) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	log := &Log{Events: make([]Event, 0)}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		// First line is the header
		if lineNum == 1 {
			var h header
			if err := json.Unmarshal(line, &h); err != nil {
				return nil, fmt.Errorf("failed to parse header: %w", err)
			}
			if h.Type != "header" {
				return nil, fmt.Errorf("%s is not a session log", path)
			}
			log.Version = h.Version
			log.SessionID = h.SessionID
			log.CreatedAt = h.CreatedAt
			log.SequenceFile = h.SequenceFile
			log.NailsPerSide = h.NailsPerSide
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		log.Events = append(log.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	if lineNum == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	return log, nil
}

// List returns the log file names in logDir, oldest first.
func List(logDir string) ([]string, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			logs = append(logs, e.Name())
		}
	}
	// Names start with a timestamp, and ReadDir sorts by name.
	return logs, nil
}
