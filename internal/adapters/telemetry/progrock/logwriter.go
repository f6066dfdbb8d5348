package progrock

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// LogWriter is a progrock.Writer that reports each finished phase through a logger.
type LogWriter struct {
	logger ports.Logger

	mu     sync.Mutex
	phases map[string]*phaseLines
}

type phaseLines struct {
	lines    int
	reported bool
}

// NewLogWriter creates a LogWriter reporting through logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		phases: make(map[string]*phaseLines),
	}
}

// WriteStatus counts output lines per phase and logs phases as they complete.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range update.Logs {
		w.phase(l.Vertex).lines += bytes.Count(l.Data, []byte{'\n'})
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		p := w.phase(v.Id)
		if p.reported {
			continue
		}
		p.reported = true
		w.report(v, p.lines)
	}
	return nil
}

func (w *LogWriter) report(v *progrock.Vertex, lines int) {
	var took time.Duration
	if v.Started != nil {
		took = v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
	}

	switch {
	case v.Error != nil:
		w.logger.Warn(fmt.Sprintf("phase %s failed after %s (%d lines of output): %s", v.Name, took, lines, *v.Error))
	case v.Canceled:
		w.logger.Warn(fmt.Sprintf("phase %s canceled after %s", v.Name, took))
	case v.Cached:
		w.logger.Info(fmt.Sprintf("phase %s cached", v.Name))
	default:
		w.logger.Info(fmt.Sprintf("phase %s done in %s (%d lines of output)", v.Name, took, lines))
	}
}

func (w *LogWriter) phase(id string) *phaseLines {
	p, ok := w.phases[id]
	if !ok {
		p = &phaseLines{}
		w.phases[id] = p
	}
	return p
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}
