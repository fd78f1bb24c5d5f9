package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Raw keyword files are flat little-endian uint32 streams: docid/pos
// pairs for posting files, bare docids for benchmark id files. Files
// ending in .zst are (de)compressed transparently.

func readFileMaybeZstd(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rd io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd reader for %s: %w", path, err)
		}
		defer dec.Close()
		rd = dec
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeFileMaybeZstd(path string, data []byte) error {
	if !strings.HasSuffix(path, ".zst") {
		return os.WriteFile(path, data, 0o644)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// loadRawUint32s reads a whole raw keyword file into memory.
func loadRawUint32s(path string) ([]uint32, error) {
	data, err := readFileMaybeZstd(path)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a whole number of uint32s", path, len(data))
	}
	vals := make([]uint32, len(data)/4)
	for i := range vals {
		vals[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return vals, nil
}

// saveRawUint32s writes vals as a raw keyword file.
func saveRawUint32s(path string, vals []uint32) error {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[4*i:], v)
	}
	return writeFileMaybeZstd(path, data)
}
