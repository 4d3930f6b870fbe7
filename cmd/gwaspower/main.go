// gwaspower computes analytic GWAS power over a grid of study designs, and can
// render the grid as a heatmap or as power curves.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/gwaspower"
	_ "github.com/carbocation/gwaspower/compileinfoprint"
	"github.com/carbocation/gwaspower/power"
	"github.com/carbocation/pfx"
)

func main() {
	var (
		design                       gwaspower.Design
		kind                         string
		config                       string
		format                       string
		output, heatmapOut, curveOut string
		cellSize                     int
		target                       float64
		genotypes                    string
	)

	flag.StringVar(&kind, "design", "", "Which quantities vary: 'variance' (rows are sample sizes, columns are variance explained), 'het' (rows are effect sizes, columns are heterozygote frequencies) or 'maf' (rows are effect sizes, columns are minor allele frequencies).")
	flag.StringVar(&design.Rows, "rows", "", "Row values: a comma-separated list or an inclusive from:to:by range.")
	flag.StringVar(&design.Cols, "cols", "", "Column values: a comma-separated list or an inclusive from:to:by range.")
	flag.StringVar(&design.N, "n", "", "Sample size. Required, as a single value, for the 'het' and 'maf' designs.")
	flag.Float64Var(&design.PValue, "pval", power.DefaultPValue, "Significance threshold.")
	flag.StringVar(&config, "config", "", "Optional. TOML design file (local or gs://). Its values replace -design, -rows, -cols, -n and -pval.")
	flag.StringVar(&format, "format", "tsv", "Output format for the grid: 'tsv' (one line per cell) or 'json'.")
	flag.StringVar(&output, "out", "", "Optional. Path (local or gs://) for the grid. Defaults to stdout.")
	flag.StringVar(&heatmapOut, "heatmap", "", "Optional. Path (local or gs://) for a PNG heatmap of the grid.")
	flag.IntVar(&cellSize, "cellsize", 40, "Heatmap cell edge, in pixels.")
	flag.StringVar(&curveOut, "curve", "", "Optional. Path (local or gs://) for a PNG of power curves across the rows.")
	flag.Float64Var(&target, "target", 0, "Optional. If set, also log the sample size needed to reach this power for every column (and row, for the effect size designs).")
	flag.StringVar(&genotypes, "genotypes", "", "Optional. Reference genotype counts HomRef,Het,HomAlt. Logs their MAF and heterozygosity and tests Hardy-Weinberg equilibrium, which the 'maf' design assumes.")
	flag.Parse()

	design.Kind = gwaspower.Kind(kind)

	if config == "" && (kind == "" || design.Rows == "" || design.Cols == "") {
		log.Println("gwaspower")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	var client *storage.Client
	if anyRemote(config, output, heatmapOut, curveOut) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		defer client.Close()
	}

	if config != "" {
		var err error
		design, err = gwaspower.ReadDesignFile(ctx, config, client)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if genotypes != "" {
		if err := reportGenotypes(genotypes, design.Kind); err != nil {
			log.Fatalln(err)
		}
	}

	grid, err := design.Compute()
	if err != nil {
		log.Fatalln(err)
	}

	if target != 0 {
		if err := reportSampleSizes(grid, design.Kind, target, design.PValue); err != nil {
			log.Fatalln(err)
		}
	}

	if err := writeGrid(ctx, client, output, format, grid); err != nil {
		log.Fatalln(err)
	}

	xLabel, yLabel := design.Labels()

	if heatmapOut != "" {
		if err := writeHeatmap(ctx, client, heatmapOut, grid, xLabel, yLabel, cellSize); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote heatmap to", heatmapOut)
	}

	if curveOut != "" {
		if err := writeCurves(ctx, client, curveOut, grid, yLabel); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote power curves to", curveOut)
	}
}

func anyRemote(paths ...string) bool {
	for _, p := range paths {
		if gwaspower.IsGoogleStoragePath(p) {
			return true
		}
	}

	return false
}

func writeGrid(ctx context.Context, client *storage.Client, path, format string, grid *power.Grid) error {
	write := gwaspower.WriteTSV
	switch format {
	case "tsv":
	case "json":
		write = gwaspower.WriteJSON
	default:
		return fmt.Errorf("unknown -format %q; use 'tsv' or 'json'", format)
	}

	if path == "" {
		return write(os.Stdout, grid)
	}

	return withOutput(ctx, client, path, func(w io.Writer) error {
		return write(w, grid)
	})
}
