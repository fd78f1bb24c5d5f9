package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/openfts/poscodec/postings"
)

func newCmd_Decode() *cli.Command {
	var outPath string
	return &cli.Command{
		Name:        "decode",
		Usage:       "Decode a posting-list blob back into a raw posting file.",
		ArgsUsage:   "<blob-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Usage:       "output path for the raw posting file",
				Destination: &outPath,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one blob file, got %d args", c.NArg())
			}
			path := c.Args().First()
			startedAt := time.Now()
			defer func() {
				klog.Infof("Finished in %s", time.Since(startedAt))
			}()

			enc, err := readFileMaybeZstd(path)
			if err != nil {
				return err
			}
			raw, err := postings.Decode(enc)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}
			if outPath == "" {
				base := strings.TrimSuffix(path, ".zst")
				base = strings.TrimSuffix(base, ".plb")
				outPath = base + ".decoded.bin"
			}
			if err := saveRawUint32s(outPath, raw); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			klog.Infof(
				"%s: %s postings, %s raw, xxh64 %016x, wrote %s",
				path,
				humanize.Comma(int64(len(raw)/2)),
				humanize.Bytes(uint64(4*len(raw))),
				xxhash.Sum64(enc),
				outPath,
			)
			return nil
		},
	}
}
