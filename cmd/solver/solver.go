// Command solver finds a minimum move solution for one robot to reach a goal
// cell, with all other robots acting as blockers.
//
//	solver --board walls.txt --robots "0,0;5,2;12,9" --robot 1 --goal 3,1
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
	fs := pflag.NewFlagSet("solver", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.AddFlags(fs)
	robotsFlag := fs.String("robots", "", `robot positions "x,y;x,y;..."`)
	robot := fs.Int("robot", 0, "index of the robot to move to the goal")
	goalFlag := fs.String("goal", "", "goal position x,y")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, stderr)

	robots, err := config.ParsePositions(*robotsFlag)
	if err != nil {
		return err
	}
	goal, err := config.ParsePosition(*goalFlag)
	if err != nil {
		return err
	}
	w, err := board.ReadFile(cfg.Board)
	if err != nil {
		return err
	}

	sc := cfg.SolverConfig(logger, w.Width, len(robots))

	sol, err := solver.Solve(sc, w, robots, *robot, goal)
	if err != nil {
		return err
	}
	if !sol.Found() {
		if sol.Capped {
			return fmt.Errorf("no solution within %d states", sc.MaxStates)
		}
		return fmt.Errorf("no solution within %d moves", sc.MaxMoves)
	}

	end, err := solver.Replay(w, robots, sol.Moves)
	if err != nil {
		return err
	}
	if end[*robot] != goal {
		return fmt.Errorf("replay ends at %s, not at goal %s", end[*robot], goal)
	}

	fmt.Fprintf(stdout, "moves: %d states: %d\n", sol.Length, sol.NumStates)
	for _, m := range sol.Moves {
		fmt.Fprintln(stdout, m)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "solver:", err)
		os.Exit(1)
	}
}
