package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/openfts/poscodec/postings"
)

func newCmd_Match() *cli.Command {
	var outPath string
	return &cli.Command{
		Name:        "match",
		Usage:       "Intersect the document sets of two keywords.",
		Description: "Takes two blob files and prints the number of docids present in both; --out writes the ascending docid list as a raw file.",
		ArgsUsage:   "<blob-a> <blob-b>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Usage:       "write the matching docids to this raw file",
				Destination: &outPath,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("expected two blob files, got %d args", c.NArg())
			}
			encA, err := readFileMaybeZstd(c.Args().Get(0))
			if err != nil {
				return err
			}
			encB, err := readFileMaybeZstd(c.Args().Get(1))
			if err != nil {
				return err
			}

			startedAt := time.Now()
			res := postings.Match(encA, encB)
			elapsed := time.Since(startedAt)

			klog.Infof(
				"%s matching docids in %s, xxh64 %016x",
				humanize.Comma(int64(len(res))),
				elapsed,
				xxhashOfUint32s(res),
			)
			if outPath != "" {
				if err := saveRawUint32s(outPath, res); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				klog.Infof("wrote %s", outPath)
			}
			return nil
		},
	}
}
