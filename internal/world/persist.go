package world

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var ErrSizeMismatch = errors.New("saved world does not match world dimensions")

// Save writes the raw block array as a gzip stream.
func (w *World) Save(dst io.Writer) error {
	zw := gzip.NewWriter(dst)

	w.mu.RLock()
	buf := make([]byte, len(w.blocks))
	for i, b := range w.blocks {
		buf[i] = byte(b)
	}
	w.mu.RUnlock()

	if _, err := zw.Write(buf); err != nil {
		_ = zw.Close()
		return fmt.Errorf("writing blocks: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing gzip stream: %w", err)
	}
	return nil
}

// Load replaces the world contents with a stream written by Save.
func (w *World) Load(src io.Reader) error {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return fmt.Errorf("opening gzip stream: %w", err)
	}
	defer zr.Close()

	// One byte over the expected size tells a longer save from an exact
	// one. Reaching the end of the stream verifies the gzip checksum.
	buf, err := io.ReadAll(io.LimitReader(zr, int64(len(w.blocks))+1))
	if err != nil {
		return fmt.Errorf("reading blocks: %w", err)
	}
	if len(buf) != len(w.blocks) {
		return ErrSizeMismatch
	}

	w.mu.Lock()
	for i, b := range buf {
		w.blocks[i] = BlockType(b)
	}
	w.mu.Unlock()

	w.CalcLightDepths(0, 0, w.Width, w.Depth)
	w.notifyAll()
	return nil
}

// SaveFile saves the world to path.
func (w *World) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create save file: %w", err)
	}
	if err := w.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile loads the world from path. A missing file is reported with an
// error matching os.ErrNotExist.
func (w *World) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open save file: %w", err)
	}
	defer f.Close()
	return w.Load(f)
}
