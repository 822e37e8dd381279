// Command maze-maker generates a perfect maze on the surface of a
// cylinder and writes two OpenSCAD files: the inner maze piece and the
// outer clearance shell that slides over it.
//
// Configuration comes from flags, overridable through MAZE_MAKER_*
// environment variables (e.g. MAZE_MAKER_ROWS=16).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mbrooker/maze-maker/cylgrid"
	"github.com/mbrooker/maze-maker/solid"
	"github.com/mbrooker/maze-maker/wallplan"
	"github.com/mbrooker/maze-maker/wilson"
)

func main() {
	flags := pflag.NewFlagSet("maze-maker", pflag.ExitOnError)
	flags.Int("rows", 10, "maze rows along the cylinder axis")
	flags.Int("cols", 20, "maze columns around the circumference (min 2)")
	flags.Float64("height", 60.0, "cylinder height in mm")
	flags.Float64("circumference", 100.0, "cylinder circumference in mm")
	flags.Bool("hollow", false, "hollow out the cylinder core")
	flags.String("maze-file", "cylinder_maze", "base filename for the inner maze piece")
	flags.String("outer-file", "cylinder_outer", "base filename for the outer shell")
	flags.Int64("seed", 0, "random seed; 0 picks a time-based seed")
	flags.Bool("quiet", false, "suppress the maze printout")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("MAZE_MAKER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(v, logger); err != nil {
		logger.Fatal("maze generation failed", zap.Error(err))
	}
}

func run(v *viper.Viper, logger *zap.Logger) error {
	rows, cols := v.GetInt("rows"), v.GetInt("cols")
	grid, err := cylgrid.New(rows, cols)
	if err != nil {
		return fmt.Errorf("grid %dx%d: %w", rows, cols, err)
	}

	seed := v.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("generating maze",
		zap.Int("rows", rows), zap.Int("cols", cols), zap.Int64("seed", seed))

	tree, err := wilson.Generate(grid, wilson.WithRand(rng))
	if err != nil {
		return err
	}
	plan := wallplan.Derive(grid, tree)

	// The entrance is the tree root on the top row; the exit is a random
	// bottom-row cell.
	start := tree.Root()
	end := cylgrid.Cell{Row: rows - 1, Col: rng.Intn(cols)}

	if !v.GetBool("quiet") {
		fmt.Printf("Wilson's Algorithm Maze on a Cylinder (%dx%d):\n", rows, cols)
		fmt.Println("(Left and right edges wrap around)")
		fmt.Println("Start (S) at top row, end (E) at bottom row")
		fmt.Print(plan.MarkedString(start, end))
		fmt.Printf("Maze is solvable: %v\n", plan.Solvable(start, end))
	}

	dims := solid.Dimensions{
		HeightMM:        v.GetFloat64("height"),
		CircumferenceMM: v.GetFloat64("circumference"),
		Hollow:          v.GetBool("hollow"),
	}
	inner, err := solid.BuildInner(plan, dims)
	if err != nil {
		return err
	}
	outer, err := solid.BuildOuter(dims)
	if err != nil {
		return err
	}

	// Both documents are complete in memory before any file is touched,
	// so a failed build never leaves partial output behind.
	innerFile := v.GetString("maze-file") + "_whole.scad"
	outerFile := v.GetString("outer-file") + ".scad"
	if err := os.WriteFile(innerFile, []byte(inner.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", innerFile, err)
	}
	if err := os.WriteFile(outerFile, []byte(outer.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outerFile, err)
	}

	logger.Info("wrote geometry",
		zap.String("inner", innerFile),
		zap.String("outer", outerFile),
		zap.Float64("height_mm", dims.HeightMM),
		zap.Float64("circumference_mm", dims.CircumferenceMM),
		zap.Bool("hollow", dims.Hollow))

	return nil
}
