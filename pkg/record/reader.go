package record

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Frame is one decoded framebuffer snapshot from the frame stream
type Frame struct {
	Pass            int
	SamplesPerPixel int
	ElapsedMs       int64
	Pixels          []byte
}

// ReadManifest loads the manifest from a bundle directory
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return Manifest{}, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("record: invalid manifest: %w", err)
	}
	return manifest, nil
}

// ReadFrames decodes every frame from a bundle's zstd stream
func ReadFrames(dir string, manifest Manifest) ([]Frame, error) {
	file, err := os.Open(filepath.Join(dir, manifest.FramesPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	var frames []Frame
	header := make([]byte, 4+4+8+4)
	for {
		if _, err := io.ReadFull(decoder, header); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return nil, err
		}

		frame := Frame{
			Pass:            int(binary.LittleEndian.Uint32(header[0:4])),
			SamplesPerPixel: int(binary.LittleEndian.Uint32(header[4:8])),
			ElapsedMs:       int64(binary.LittleEndian.Uint64(header[8:16])),
		}
		size := binary.LittleEndian.Uint32(header[16:20])
		frame.Pixels = make([]byte, size)
		if _, err := io.ReadFull(decoder, frame.Pixels); err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
}

// ReadEvents decodes the event log from a bundle's snappy stream
func ReadEvents(dir string, manifest Manifest) ([]PassEvent, error) {
	file, err := os.Open(filepath.Join(dir, manifest.EventsPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []PassEvent
	scanner := bufio.NewScanner(snappy.NewReader(file))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var event PassEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			return nil, fmt.Errorf("record: invalid event line: %w", err)
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}
