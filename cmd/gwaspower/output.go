package main

import (
	"context"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/gwaspower"
	"github.com/carbocation/gwaspower/curve"
	"github.com/carbocation/gwaspower/heatmap"
	"github.com/carbocation/gwaspower/power"
	"github.com/carbocation/pfx"
)

// withOutput hands fn a writer for path and closes it afterwards. A failed
// Close is reported, since that is when Google Storage commits the object. If
// fn fails, the upload is cancelled before Close so no partial object is
// committed, and a partial local file is removed.
func withOutput(ctx context.Context, client *storage.Client, path string, fn func(io.Writer) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := gwaspower.CreateOutput(ctx, path, client)
	if err != nil {
		return pfx.Err(err)
	}

	if err := fn(w); err != nil {
		cancel()
		w.Close()
		if !gwaspower.IsGoogleStoragePath(path) {
			if local, lerr := gwaspower.ExpandHome(path); lerr == nil {
				os.Remove(local)
			}
		}
		return err
	}

	return pfx.Err(w.Close())
}

func writeHeatmap(ctx context.Context, client *storage.Client, path string, grid *power.Grid, xLabel, yLabel string, cellSize int) error {
	img, err := heatmap.Render(grid, xLabel, yLabel, heatmap.Options{CellSize: cellSize})
	if err != nil {
		return err
	}

	return withOutput(ctx, client, path, func(w io.Writer) error {
		return heatmap.EncodePNG(w, img)
	})
}

func writeCurves(ctx context.Context, client *storage.Client, path string, grid *power.Grid, xLabel string) error {
	return withOutput(ctx, client, path, func(w io.Writer) error {
		return curve.Render(grid, xLabel, w)
	})
}
