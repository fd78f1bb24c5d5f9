package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/openfts/poscodec/postings"
)

func newCmd_Encode() *cli.Command {
	var compress bool
	var jobs int
	return &cli.Command{
		Name:        "encode",
		Usage:       "Encode raw posting files into posting-list blobs.",
		Description: "Each argument is one keyword's raw posting file: a flat little-endian uint32 stream of docid/pos pairs sorted by (docid, pos). Writes one blob file per input, next to it.",
		ArgsUsage:   "<raw-posting-file>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "zstd",
				Usage:       "compress the output blobs with zstd",
				Destination: &compress,
			},
			&cli.IntFlag{
				Name:        "jobs",
				Usage:       "how many files to encode concurrently",
				Value:       4,
				Destination: &jobs,
			},
		},
		Action: func(c *cli.Context) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("no input files given")
			}
			startedAt := time.Now()
			defer func() {
				klog.Infof("Finished in %s", time.Since(startedAt))
			}()
			bar := progressbar.Default(int64(len(paths)), "encoding")
			group := new(errgroup.Group)
			group.SetLimit(jobs)
			for _, path := range paths {
				path := path
				group.Go(func() error {
					defer bar.Add(1)
					return encodeOneFile(path, compress)
				})
			}
			return group.Wait()
		},
	}
}

// blobPathFor derives the output blob path from a raw input path.
func blobPathFor(rawPath string, compress bool) string {
	base := strings.TrimSuffix(rawPath, ".zst")
	base = strings.TrimSuffix(base, ".bin")
	if compress {
		return base + ".plb.zst"
	}
	return base + ".plb"
}

func encodeOneFile(path string, compress bool) error {
	raw, err := loadRawUint32s(path)
	if err != nil {
		return err
	}
	enc, err := postings.Encode(raw)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	outPath := blobPathFor(path, compress)
	if err := writeFileMaybeZstd(outPath, enc); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	rawBytes := uint64(4 * len(raw))
	klog.Infof(
		"%s: %s postings, %s raw -> %s encoded, ratio %.3f, xxh64 %016x, wrote %s",
		path,
		humanize.Comma(int64(len(raw)/2)),
		humanize.Bytes(rawBytes),
		humanize.Bytes(uint64(len(enc))),
		float64(len(enc))/float64(rawBytes),
		xxhash.Sum64(enc),
		outPath,
	)
	return nil
}
