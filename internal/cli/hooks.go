package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/featuredoc/pkg/observability"
)

// LogHooks reports pipeline and output events to a logger at debug level.
type LogHooks struct {
	observability.NoopPipelineHooks
	Logger *log.Logger
}

// NewLogHooks creates hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnParseComplete(_ context.Context, manifest string, itemCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("scan failed", "manifest", manifest, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("scan complete", "manifest", manifest, "items", itemCount, "duration", d)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, manifest, format string, d time.Duration, err error) {
	h.Logger.Debug("render complete", "manifest", manifest, "format", format, "duration", d, "err", err)
}

func (h *LogHooks) OnWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.Logger.Warn("write failed", "path", path, "err", err)
		return
	}
	h.Logger.Debug("wrote file", "path", path, "bytes", size)
}

// Register installs h as the pipeline and output hooks.
func (h *LogHooks) Register() {
	observability.SetPipelineHooks(h)
	observability.SetOutputHooks(h)
}
