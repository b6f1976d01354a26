// Command wanggen generates a blob or maze tile map and prints its tile
// indices, one row per line, -1 for cells left empty.
//
//	wanggen -kind maze -width 20 -height 10 -seed 7 -rooms -audit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wang/blob"
	"github.com/katalvlaran/wang/gridgraph"
	"github.com/katalvlaran/wang/maze"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wanggen: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wanggen", flag.ContinueOnError)
	def := defaultConfig()
	kind := fs.String("kind", def.Kind, "map kind: blob or maze")
	width := fs.Int("width", def.Width, "map width in cells")
	height := fs.Int("height", def.Height, "map height in cells")
	seed := fs.Int64("seed", def.Seed, "random seed")
	randomness := fs.Int("randomness", def.Randomness, "maze: percent chance of branching from a random active cell")
	rooms := fs.Bool("rooms", def.Rooms, "maze: close almost-complete 2x2 loops into rooms")
	strict := fs.Bool("strict", def.Strict, "blob: fail when a cell has no candidate tile")
	cfgPath := fs.String("config", "", "YAML file with defaults; explicit flags win")
	audit := fs.Bool("audit", false, "print a legality report after the map")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := def
	if *cfgPath != "" {
		var err error
		if cfg, err = loadConfig(*cfgPath, cfg); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kind":
			cfg.Kind = *kind
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "randomness":
			cfg.Randomness = *randomness
		case "rooms":
			cfg.Rooms = *rooms
		case "strict":
			cfg.Strict = *strict
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	src, err := generate(cfg)
	if err != nil {
		return err
	}
	gg, err := gridgraph.FromTiles(src, gridgraph.DefaultGridOptions())
	if err != nil {
		return err
	}
	printIndices(out, gg.Indices())
	if *audit {
		printReport(out, gg.Audit(nil), cfg)
	}
	return nil
}

// generate builds and fills the map described by cfg.
func generate(cfg config) (gridgraph.Source, error) {
	switch cfg.Kind {
	case kindMaze:
		m, err := maze.New(cfg.Width, cfg.Height, cfg.Seed,
			maze.WithRandomness(cfg.Randomness), maze.WithRooms(cfg.Rooms))
		if err != nil {
			return nil, err
		}
		if err := m.Generate(); err != nil {
			return nil, err
		}
		st := m.Stats()
		log.Printf("maze: start %s, %d visited, %d connections, %d rooms",
			m.Start(), st.Visited, st.Connections, st.Rooms)
		return m, nil
	case kindBlob:
		var opts []blob.Option
		if cfg.Strict {
			opts = append(opts, blob.WithStrict())
		}
		m, err := blob.New(cfg.Width, cfg.Height, cfg.Seed, opts...)
		if err != nil {
			return nil, err
		}
		if err := m.Generate(); err != nil {
			return nil, err
		}
		if n := len(m.Unresolved()); n > 0 {
			log.Printf("blob: %d cell(s) left empty", n)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownKind, cfg.Kind)
}

// printIndices writes rows of right-aligned indices.
func printIndices(w io.Writer, rows [][]int) {
	width := 1
	for _, row := range rows {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, v)
		}
		fmt.Fprintln(w, sb.String())
	}
}

// printReport writes the audit counters and the verdict for cfg.Kind.
func printReport(w io.Writer, r gridgraph.Report, cfg config) {
	fmt.Fprintf(w, "cells: %d\n", r.Cells)
	fmt.Fprintf(w, "null: %d\n", r.Null)
	fmt.Fprintf(w, "boundary violations: %d\n", r.BoundaryViolations)
	fmt.Fprintf(w, "adjacency violations: %d\n", r.AdjacencyViolations)
	fmt.Fprintf(w, "unknown masks: %d\n", r.UnknownMasks)
	fmt.Fprintf(w, "one-sided edges: %d\n", r.OneSidedEdges)
	fmt.Fprintf(w, "open corners: %d\n", r.OpenCorners)
	fmt.Fprintf(w, "components: %d\n", r.Components)
	legal := r.BlobLegal()
	if cfg.Kind == kindMaze {
		legal = r.MazeLegal(cfg.Rooms)
	}
	fmt.Fprintf(w, "legal: %t\n", legal)
}
