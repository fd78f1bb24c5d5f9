package main

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/openfts/poscodec/postings"
)

func newCmd_Lookup() *cli.Command {
	var outPath, benchPath string
	return &cli.Command{
		Name:        "lookup",
		Usage:       "Fetch the mixed postings of two keywords for one or more docids.",
		Description: "Takes two blob files and a set of docids (via --id and/or --bench). For each docid the postings of both keywords are merged in (docid, pos) order; which keyword contributed a posting is not preserved.",
		ArgsUsage:   "--id=<docid>... [--bench=<docid-file>] <blob-a> <blob-b>",
		Flags: []cli.Flag{
			&cli.Uint64SliceFlag{
				Name:  "id",
				Usage: "docid to look up; repeatable",
			},
			&cli.StringFlag{
				Name:        "bench",
				Usage:       "raw file of docids to look up, one uint32 each",
				Destination: &benchPath,
			},
			&cli.StringFlag{
				Name:        "out",
				Usage:       "write the accumulated result stream to this raw file",
				Destination: &outPath,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("expected two blob files, got %d args", c.NArg())
			}
			var ids []uint32
			for _, id := range c.Uint64Slice("id") {
				if id > uint64(^uint32(0)) {
					return fmt.Errorf("docid %d does not fit in 32 bits", id)
				}
				ids = append(ids, uint32(id))
			}
			if benchPath != "" {
				benchIDs, err := loadRawUint32s(benchPath)
				if err != nil {
					return err
				}
				ids = append(ids, benchIDs...)
			}
			if len(ids) == 0 {
				return fmt.Errorf("no docids given; use --id or --bench")
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
			var res []uint32
			for _, id := range ids {
				res = postings.AppendLookup(res, encA, encB, id)
			}
			elapsed := time.Since(startedAt)

			klog.Infof(
				"%s lookups -> %s postings in %s, xxh64 %016x",
				humanize.Comma(int64(len(ids))),
				humanize.Comma(int64(len(res)/2)),
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

// xxhashOfUint32s digests the little-endian byte form of vals, the same
// bytes a raw result file would hold.
func xxhashOfUint32s(vals []uint32) uint64 {
	digest := xxhash.New()
	var buf [4]byte
	for _, v := range vals {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		digest.Write(buf[:])
	}
	return digest.Sum64()
}
