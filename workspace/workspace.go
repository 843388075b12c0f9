// Package workspace manages the on-disk layout the session works against:
// uploads (read-only inputs), results (script outputs), temp (scratch
// scripts) and logs.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	UploadsDirName = "uploads"
	ResultsDirName = "results"
	TempDirName    = "temp"
	LogsDirName    = "logs"
)

// Workspace holds the absolute paths of the session directories.
type Workspace struct {
	Root    string
	Uploads string
	Results string
	Temp    string
	Logs    string
}

// Init creates the workspace directories under root if they do not exist and
// returns their resolved paths.
func Init(root string) (*Workspace, error) {
	ws := &Workspace{
		Root:    root,
		Uploads: filepath.Join(root, UploadsDirName),
		Results: filepath.Join(root, ResultsDirName),
		Temp:    filepath.Join(root, TempDirName),
		Logs:    filepath.Join(root, LogsDirName),
	}

	for _, dir := range []string{ws.Uploads, ws.Results, ws.Temp, ws.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return ws, nil
}
