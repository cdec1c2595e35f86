// Package logger provides tentoku's ambient logging: a leveled tracer
// for operational messages and a JSON debug-dump helper for persisting
// one tokenize call's full result to disk on request.
//
// The tracer selects a keyed schuko Trace once per package. The
// debug-dump half persists per-tokenize-call token lists as indented
// JSON.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// traceKey is the schuko trace key this package selects under, mirrored
// in any host application's tracing configuration.
const traceKey = "tentoku"

// Tracer returns the package-wide leveled tracer. Call sites log with
// Tracer().Infof/Debugf/Errorf; the active backend and level are
// whatever the host process configured via schuko/tracing.
func Tracer() tracing.Trace {
	return tracing.Select(traceKey)
}

// InitLogs clears any *.json debug dumps left over in dir from a
// previous run.
func InitLogs(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("logger: read %s: %w", dir, err)
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		if err := os.Remove(dir + "/" + f.Name()); err != nil {
			return fmt.Errorf("logger: remove %s: %w", f.Name(), err)
		}
	}
	return nil
}

// LogJSON writes data as indented JSON to dir/id.json, used by
// cmd/tentoku to persist a full token list on every invocation.
func LogJSON(dir, id string, data interface{}) error {
	path := fmt.Sprintf("%s/%s.json", dir, id)
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("logger: marshal %s: %w", id, err)
	}
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return fmt.Errorf("logger: write %s: %w", path, err)
	}
	return nil
}
