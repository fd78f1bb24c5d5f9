package main

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/openfts/poscodec/postings"
)

func newCmd_Verify() *cli.Command {
	var rawPath string
	return &cli.Command{
		Name:        "verify",
		Usage:       "Verify a blob against the raw posting file it was encoded from.",
		Description: "Fully decodes the blob and compares it with the reference stream, then resolves every present docid through the random-access path and probes absent docids in the covered range.",
		ArgsUsage:   "--raw=<raw-posting-file> <blob-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "raw",
				Usage:       "the reference raw posting file",
				Destination: &rawPath,
				Required:    true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one blob file, got %d args", c.NArg())
			}
			blobPath := c.Args().First()
			startedAt := time.Now()
			defer func() {
				klog.Infof("Finished in %s", time.Since(startedAt))
			}()

			want, err := loadRawUint32s(rawPath)
			if err != nil {
				return err
			}
			enc, err := readFileMaybeZstd(blobPath)
			if err != nil {
				return err
			}

			got, err := postings.Decode(enc)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", blobPath, err)
			}
			if err := compareStreams(want, got); err != nil {
				return cli.Exit(fmt.Errorf("%s does not round-trip %s: %w", blobPath, rawPath, err), 1)
			}
			klog.Infof("round-trip ok: %s postings", humanize.Comma(int64(len(want)/2)))

			if err := verifyFindDoc(enc, want); err != nil {
				return cli.Exit(err, 1)
			}
			klog.Info("random access ok")
			return nil
		},
	}
}

func compareStreams(want, got []uint32) error {
	n := min(len(want), len(got))
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			// Align to the enclosing pair and show a little context.
			from := max(i-i%2-6, 0)
			to := min(from+12, n)
			return fmt.Errorf(
				"streams diverge at uint32 %d:\nwant: %sgot:  %s",
				i,
				spew.Sdump(want[from:to]),
				spew.Sdump(got[from:to]),
			)
		}
	}
	if len(want) != len(got) {
		return fmt.Errorf("stream lengths differ: want %d uint32s, got %d", len(want), len(got))
	}
	return nil
}

// verifyFindDoc resolves every docid of the reference stream through
// FindDoc and probes absent docids across the covered range.
func verifyFindDoc(enc []byte, raw []uint32) error {
	if len(raw) == 0 {
		return nil
	}
	present := make(map[uint32]bool)
	for i := 0; i < len(raw); i += 2 {
		present[raw[i]] = true
	}
	for id := range present {
		off := postings.FindDoc(enc, id)
		if off < 0 {
			return fmt.Errorf("docid %d is present but FindDoc missed it", id)
		}
		docid, _ := postings.ReadDoc(enc, off)
		if docid != id {
			return fmt.Errorf("FindDoc(%d) points at the frame of docid %d", id, docid)
		}
	}
	klog.Infof("resolved %s present docids", humanize.Comma(int64(len(present))))

	minID := raw[0]
	maxID := raw[len(raw)-2]
	stride := (maxID - minID) / 100000
	if stride == 0 {
		stride = 1
	}
	probed := 0
	for id := minID; id <= maxID && id >= minID; id += stride {
		if present[id] {
			continue
		}
		probed++
		if off := postings.FindDoc(enc, id); off >= 0 {
			return fmt.Errorf("docid %d is absent but FindDoc returned offset %d", id, off)
		}
	}
	klog.Infof("probed %s absent docids", humanize.Comma(int64(probed)))
	return nil
}
