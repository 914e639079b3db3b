// Command router finds the shortest slide sequence of a lone robot between
// two cells of a board.
//
//	router --board walls.txt --start 0,0 --end 15,15
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-ricrob/slidesolver/board"
	"github.com/go-ricrob/slidesolver/internal/config"
	"github.com/go-ricrob/slidesolver/internal/logging"
	"github.com/go-ricrob/slidesolver/solver"
	"github.com/spf13/pflag"
)

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("router", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.AddFlags(fs)
	startFlag := fs.String("start", "", "start position x,y")
	endFlag := fs.String("end", "", "end position x,y")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, stderr)

	start, err := config.ParsePosition(*startFlag)
	if err != nil {
		return err
	}
	end, err := config.ParsePosition(*endFlag)
	if err != nil {
		return err
	}
	w, err := board.ReadFile(cfg.Board)
	if err != nil {
		return err
	}

	sc := cfg.SolverConfig(logger, w.Width, 1)

	r, err := solver.FindRoute(sc, w, start, end)
	if err != nil {
		return err
	}
	if !r.Found() {
		return fmt.Errorf("no route within %d moves", sc.MaxRouteLength())
	}
	if got := solver.ReplayRoute(w, start, r.Moves); got != end {
		return fmt.Errorf("replay ends at %s, not at %s", got, end)
	}
	logger.Info().Stringer("start", start).Stringer("end", end).Int("length", r.Length).Msg("route found")

	fmt.Fprintf(stdout, "moves: %d\n", r.Length)
	p := start
	for _, d := range r.Moves {
		next := w.Slide(p, d)
		fmt.Fprintf(stdout, "%s %s->%s\n", d, p, next)
		p = next
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "router:", err)
		os.Exit(1)
	}
}
