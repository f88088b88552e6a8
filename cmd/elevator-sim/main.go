// Command elevator-sim runs an elevator timing simulation from the command
// line, optionally narrated in real time with an interactive close-door key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go-elevator-timing/pkg/elevator"

	"github.com/eiannone/keyboard"
)

func main() {
	realTime := flag.Bool("real-time", false, "perform the simulation on the wall clock with live narration")
	fast := flag.Bool("fast", false, "use the express elevator (5 seconds per floor)")
	profilePath := flag.String("profile", "", "path to a YAML timing profile (overrides --fast)")
	logPath := flag.String("log", "elevator_sim.log", "simulation log file")
	flag.Parse()

	if flag.NArg() < 1 {
		printInstructions()
		os.Exit(1)
	}

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := flag.Arg(0)
	slog.Info("Starting elevator simulation", "input", input, "real_time", *realTime)

	startFloor, targets, err := parseInput(input)
	if err != nil {
		fail(err)
	}

	profile := elevator.StandardProfile()
	if *fast {
		profile = elevator.FastProfile()
	}
	if *profilePath != "" {
		if profile, err = elevator.LoadProfile(*profilePath); err != nil {
			fail(err)
		}
	}

	sim, err := elevator.New(profile, startFloor, targets, *realTime)
	if err != nil {
		fail(err)
	}

	if profile.Label != "" {
		fmt.Printf("Using the %s elevator!\n", profile.Label)
	}
	fmt.Println("\n=== Elevator Simulation Starting ===")
	fmt.Printf("Starting floor: %d\n", startFloor)
	fmt.Printf("Floors to visit: %s\n\n", joinInts(targets, ", "))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sim.RealTime() {
		fmt.Println("Press 'c' at any time to close the doors early.")
		fmt.Println()
		startDoorControl(ctx, sim)
	}

	narrated := make(chan struct{})
	go func() {
		defer close(narrated)
		for event := range sim.Events() {
			fmt.Println(event.Message)
			if event.Type == elevator.EventComplete {
				return
			}
		}
	}()

	stats, err := sim.Run(ctx)
	if err != nil {
		slog.Warn("Simulation ended early", "error", err)
	} else {
		<-narrated
	}

	fmt.Println("\n=== Simulation Complete ===")
	fmt.Printf("Total Operations Time: %d seconds\n", stats.TotalTime)
	fmt.Printf("Total Travel Time: %d seconds\n", stats.TravelTime)
	fmt.Printf("Total Door Operations Time(open + close): %d seconds\n", stats.DoorOperationTime)
	fmt.Printf("Total Passenger Transfers Time: %d seconds\n", stats.PassengerTransferTime)
	fmt.Printf("Floors Visited: %s\n", joinInts(stats.VisitedFloors, ","))
}

// parseInput parses "start=12 floor=2,9,1,32" into the start floor and the
// ordered floors to visit. Range validation happens in elevator.New.
func parseInput(input string) (int, []int, error) {
	var startStr, floorsStr string
	for _, field := range strings.Fields(strings.TrimSpace(input)) {
		switch {
		case strings.HasPrefix(field, "start="):
			startStr = strings.TrimPrefix(field, "start=")
		case strings.HasPrefix(field, "floor="):
			floorsStr = strings.TrimPrefix(field, "floor=")
		}
	}
	if startStr == "" || floorsStr == "" {
		return 0, nil, fmt.Errorf("invalid input format, expected: 'start=X floor=Y,Z,...'")
	}

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return 0, nil, fmt.Errorf("start floor must be a number, got %q", startStr)
	}

	var floors []int
	for _, part := range strings.Split(floorsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		floor, err := strconv.Atoi(part)
		if err != nil {
			return 0, nil, fmt.Errorf("all floors must be numbers, got %q", part)
		}
		floors = append(floors, floor)
	}
	if len(floors) == 0 {
		return 0, nil, fmt.Errorf("at least one floor must be specified in the floor list")
	}

	return start, floors, nil
}

// startDoorControl wires the close-door key to the simulation. Raw keyboard
// capture lets 'c' work without Enter; when no terminal is available it falls
// back to the line-oriented listener on stdin.
func startDoorControl(ctx context.Context, sim *elevator.Simulation) {
	keys, err := keyboard.GetKeys(8)
	if err != nil {
		slog.Info("Keyboard unavailable, using line input", "error", err)
		go sim.ListenDoorControl(ctx, os.Stdin)
		return
	}

	go func() {
		defer keyboard.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-keys:
				if !ok || event.Err != nil {
					return
				}
				if event.Key == keyboard.KeyCtrlC {
					keyboard.Close()
					fmt.Println("\nSimulation interrupted.")
					slog.Warn("Simulation interrupted by user")
					os.Exit(1)
				}
				if event.Rune == 'c' || event.Rune == 'C' {
					sim.PressCloseButton()
				}
			}
		}
	}()
}

func setupLogging(path string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	return nil
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func fail(err error) {
	slog.Error("Validation error", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printInstructions() {
	fmt.Println("Elevator Timing Simulator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  elevator-sim [flags] \"start=12 floor=2,9,1,32\"")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --real-time      perform the simulation on the wall clock with live narration")
	fmt.Println("  --fast           use the express elevator (5 seconds per floor)")
	fmt.Println("  --profile FILE   load a custom YAML timing profile")
	fmt.Println("  --log FILE       simulation log file (default elevator_sim.log)")
	fmt.Println()
	fmt.Printf("Floors must be between %d and %d.\n", elevator.MinFloor, elevator.MaxFloor)
	fmt.Println("In real-time mode, press 'c' to close the doors early.")
}
