package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
	"github.com/kaelstrom/voltorb-oracle/pkg/orchestrate"
	"github.com/kaelstrom/voltorb-oracle/pkg/render"
)

const version = "1.0.0"

// CLI flags
var (
	requestPath = flag.String("request", "", "Path to JSON request file (required)")
	configPath  = flag.String("config", "", "Path to YAML engine configuration file (default: built-in defaults)")
	outputPath  = flag.String("output", "", "Path to write the JSON response (default: stdout)")
	svgPath     = flag.String("svg", "", "Optional path to write a diagnostic SVG snapshot of the board")
	textPath    = flag.String("text", "", "Optional path to write an ASCII text snapshot of the board ('-' for stdout)")
	seedFlag    = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("voltorb-oracle version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *requestPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -request flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg := board.DefaultEngineConfig()
	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading configuration from %s\n", *configPath)
		}
		loaded, err := board.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if *seedFlag != 0 {
		seed := *seedFlag
		if *verbose {
			fmt.Printf("Overriding seed with %d\n", seed)
		}
		cfg.Seed = &seed
	}

	if *verbose {
		fmt.Printf("Loading request from %s\n", *requestPath)
	}
	req, err := loadRequest(*requestPath)
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}

	start := time.Now()
	resp, err := orchestrate.Analyze(ctx, req, cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Analysis completed in %v\n", elapsed)
		fmt.Printf("Game state: %s\n", resp.GameState)
		fmt.Printf("Recommendations: %d\n", len(resp.Recommendations))
	}

	if err := writeResponse(resp); err != nil {
		return err
	}

	if *svgPath != "" {
		if err := exportSVG(req, *svgPath); err != nil {
			return err
		}
	}

	if *textPath != "" {
		if err := exportText(req, *textPath); err != nil {
			return err
		}
	}

	return nil
}

func loadRequest(path string) (*board.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	var req board.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request JSON: %w", err)
	}
	return &req, nil
}

func writeResponse(resp *board.AnalysisResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}

	if *outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(*outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing response file: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote response to %s\n", *outputPath)
	}
	return nil
}

// exportSVG rebuilds the board from the request (targets plus revealed
// cells, without propagation) purely for the diagnostic snapshot; it
// never influences the response already written.
func exportSVG(req *board.Request, path string) error {
	b := board.NewBoard(req.Rows, req.Cols)
	for _, rc := range req.Revealed {
		cell := b.Cell(rc.Position)
		cell.Domain = board.SingletonMask(rc.Value)
		cell.Given = true
	}

	opts := render.DefaultSVGOptions()
	opts.Title = "Voltorb Oracle"
	data, err := render.ExportSVG(b, opts)
	if err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing SVG file: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote SVG snapshot to %s\n", path)
	}
	return nil
}

// exportText rebuilds the board from the request the same way exportSVG
// does, for the same diagnostic-only reason, and writes the ASCII grid
// dump to path, or to stdout if path is "-".
func exportText(req *board.Request, path string) error {
	b := board.NewBoard(req.Rows, req.Cols)
	for _, rc := range req.Revealed {
		cell := b.Cell(rc.Position)
		cell.Domain = board.SingletonMask(rc.Value)
		cell.Given = true
	}

	text := render.RenderText(b)

	if path == "-" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing text file: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote text snapshot to %s\n", path)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: voltorb-oracle -request <request.json> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'voltorb-oracle -help' for detailed help")
}

func printHelp() {
	fmt.Printf("voltorb-oracle version %s\n\n", version)
	fmt.Println("A command-line decision-support tool for Voltorb Flip boards.")
	fmt.Println("\nUsage:")
	fmt.Println("  voltorb-oracle -request <request.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -request string")
	fmt.Println("        Path to JSON request file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML engine configuration file (default: built-in defaults)")
	fmt.Println("  -output string")
	fmt.Println("        Path to write the JSON response (default: stdout)")
	fmt.Println("  -svg string")
	fmt.Println("        Path to write a diagnostic SVG snapshot of the board")
	fmt.Println("  -text string")
	fmt.Println("        Path to write an ASCII text snapshot of the board ('-' for stdout)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Analyze a board with default configuration")
	fmt.Println("  voltorb-oracle -request board.json")
	fmt.Println("\n  # Analyze with a fixed seed and write a debug snapshot")
	fmt.Println("  voltorb-oracle -request board.json -seed 12345 -svg board.svg")
	fmt.Println("\nRequest File:")
	fmt.Println("  The JSON request specifies:")
	fmt.Println("  - mode: \"level\" or \"profit\"")
	fmt.Println("  - rows/cols: five {sum, voltorbs} objects each")
	fmt.Println("  - revealed: already-flipped cells as {position: {row, col}, value}")
}
