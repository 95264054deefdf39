// Package record persists render progress to disk: a compressed stream of
// per-pass framebuffer snapshots plus a line-oriented event log, described
// by a manifest so external tooling can locate the artifacts.
package record

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

const (
	manifestName = "manifest.json"
	framesName   = "frames.bin.zst"
	eventsName   = "events.jsonl.sz"
)

// Manifest describes a recording bundle
type Manifest struct {
	Version    int    `json:"version"`
	Scene      string `json:"scene"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	CreatedAt  string `json:"created_at"`
	FramesPath string `json:"frames_path"`
	EventsPath string `json:"events_path"`
}

// PassEvent is one line of the event log, describing a completed pass
type PassEvent struct {
	Pass            int    `json:"pass"`
	TotalPasses     int    `json:"total_passes"`
	SamplesPerPixel int    `json:"samples_per_pixel"`
	ElapsedMs       int64  `json:"elapsed_ms"`
	RecordedAt      string `json:"recorded_at"`
}

// Writer streams render passes into a recording bundle. Safe for use from a
// single goroutine per method call; the render loop invokes it between
// passes, never concurrently with itself.
type Writer struct {
	mu          sync.Mutex
	dir         string
	frameFile   *os.File
	frameStream *zstd.Encoder
	eventFile   *os.File
	eventStream *snappy.Writer
	closed      bool
}

// NewWriter creates the bundle directory under root, opens the compressed
// sinks and writes the manifest.
func NewWriter(root, sceneName string, width, height int) (*Writer, Manifest, error) {
	if root == "" {
		return nil, Manifest{}, fmt.Errorf("record: root directory must be provided")
	}

	created := time.Now().UTC()
	dir := filepath.Join(root, fmt.Sprintf("%s-%s", sceneName, created.Format("20060102T150405Z")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, Manifest{}, err
	}

	frameFile, err := os.Create(filepath.Join(dir, framesName))
	if err != nil {
		return nil, Manifest{}, err
	}
	frameStream, err := zstd.NewWriter(frameFile)
	if err != nil {
		frameFile.Close()
		return nil, Manifest{}, err
	}

	eventFile, err := os.Create(filepath.Join(dir, eventsName))
	if err != nil {
		frameStream.Close()
		frameFile.Close()
		return nil, Manifest{}, err
	}
	eventStream := snappy.NewBufferedWriter(eventFile)

	manifest := Manifest{
		Version:    1,
		Scene:      sceneName,
		Width:      width,
		Height:     height,
		CreatedAt:  created.Format(time.RFC3339Nano),
		FramesPath: framesName,
		EventsPath: eventsName,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err == nil {
		err = os.WriteFile(filepath.Join(dir, manifestName), data, 0o644)
	}
	if err != nil {
		eventStream.Close()
		eventFile.Close()
		frameStream.Close()
		frameFile.Close()
		return nil, Manifest{}, err
	}

	return &Writer{
		dir:         dir,
		frameFile:   frameFile,
		frameStream: frameStream,
		eventFile:   eventFile,
		eventStream: eventStream,
	}, manifest, nil
}

// Directory returns the bundle directory
func (w *Writer) Directory() string {
	return w.dir
}

// RecordPass appends an event line and a length-prefixed framebuffer
// snapshot for the given pass. pixels is the gamma-corrected RGBA data.
func (w *Writer) RecordPass(event PassEvent, pixels []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("record: writer is closed")
	}
	if event.RecordedAt == "" {
		event.RecordedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}

	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := w.eventStream.Write(append(line, '\n')); err != nil {
		return err
	}
	if err := w.eventStream.Flush(); err != nil {
		return err
	}

	// Length-prefixed frames let a replayer step the stream without
	// knowing the image size in advance
	header := make([]byte, 4+4+8+4)
	binary.LittleEndian.PutUint32(header[0:4], uint32(event.Pass))
	binary.LittleEndian.PutUint32(header[4:8], uint32(event.SamplesPerPixel))
	binary.LittleEndian.PutUint64(header[8:16], uint64(event.ElapsedMs))
	binary.LittleEndian.PutUint32(header[16:20], uint32(len(pixels)))
	if _, err := w.frameStream.Write(header); err != nil {
		return err
	}
	if _, err := w.frameStream.Write(pixels); err != nil {
		return err
	}
	return nil
}

// Close flushes and releases both sinks, surfacing the first failure
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	var firstErr error
	if err := w.eventStream.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.eventFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.frameStream.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.frameFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
