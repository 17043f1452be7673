package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hausgo/housing-calculator/internal/breakeven"
	"github.com/hausgo/housing-calculator/internal/calculation"
	"github.com/hausgo/housing-calculator/internal/compare"
	"github.com/hausgo/housing-calculator/internal/config"
	"github.com/hausgo/housing-calculator/internal/output"
	"github.com/hausgo/housing-calculator/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "hausgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newEngine builds a calculation engine wired to the CLI logger when --debug
// is set.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

var rootCmd = &cobra.Command{
	Use:   "hausgo",
	Short: "Housing strategy calculator CLI",
	Long:  "Compares buying versus renting versus buying-then-renting-out over a fixed horizon",
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare housing strategies from an assumptions file",
	Long: `Compare the net financial outcome of each housing strategy.

Examples:
  ./hausgo compare assumptions.yaml
  ./hausgo compare assumptions.yaml --format csv
  ./hausgo compare assumptions.yaml --format json --debug
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		assumptions, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		cmp, err := engine.ComputeComparison(assumptions)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := compare.GetFormatterByName(strings.ToLower(outputFormat))
		if formatter == nil {
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}

		rendered, err := formatter.Format(compare.NewComparisonSet(cmp, inputFile))
		if err != nil {
			log.Fatalf("Failed to format output: %v", err)
		}
		fmt.Print(rendered)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an assumptions file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Assumptions file %s is valid\n", inputFile)
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [input-file]",
	Short: "Solve for the rent or appreciation rate where buying and renting tie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		assumptions, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		targetName, _ := cmd.Flags().GetString("target")
		var target breakeven.Target
		switch strings.ToLower(targetName) {
		case "rent":
			target = breakeven.TargetRent
		case "appreciation":
			target = breakeven.TargetAppreciation
		default:
			log.Fatalf("Unknown break-even target: %s (valid: rent, appreciation)", targetName)
		}

		opts := breakeven.DefaultOptions()
		if tolerance, _ := cmd.Flags().GetFloat64("tolerance"); tolerance > 0 {
			opts.Tolerance = decimal.NewFromFloat(tolerance)
		}

		engine := newEngine(cmd)
		result, err := breakeven.Solve(engine, assumptions, target, opts)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("BREAK-EVEN ANALYSIS")
		fmt.Println("===================")
		switch result.Target {
		case breakeven.TargetRent:
			fmt.Printf("Break-Even Monthly Rent: $%s\n", result.Value.StringFixed(2))
		case breakeven.TargetAppreciation:
			fmt.Printf("Break-Even Appreciation Rate: %s%%\n", result.Value.Mul(decimal.NewFromInt(100)).StringFixed(3))
		}
		fmt.Printf("Net-Gain Gap at Solution: $%s\n", result.Gap.StringFixed(2))
		fmt.Printf("Iterations: %d\n", result.Iterations)
		if !result.Converged {
			fmt.Println("Warning: solver hit the iteration limit before reaching tolerance")
		}
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [input-file]",
	Short: "Sweep one rate assumption and report net gains at each step",
	Long: `Sweep one rate assumption across base-spread to base+spread.

Parameters: appreciation, investment_return, rent_growth, fee_growth, mortgage_rate

Examples:
  ./hausgo sensitivity assumptions.yaml --parameter appreciation
  ./hausgo sensitivity assumptions.yaml --parameter mortgage_rate --spread 0.01 --steps 9
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		assumptions, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		paramName, _ := cmd.Flags().GetString("parameter")
		spread, _ := cmd.Flags().GetFloat64("spread")
		steps, _ := cmd.Flags().GetInt("steps")

		engine := newEngine(cmd)
		result, err := engine.RunSensitivity(assumptions, calculation.SensitivityParameter(paramName), decimal.NewFromFloat(spread), steps)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("SENSITIVITY: %s (base %s)\n", result.Parameter, result.BaseValue.StringFixed(4))
		fmt.Println(strings.Repeat("=", 60))
		header := fmt.Sprintf("%-10s %15s %15s", "Value", "Buy & Occupy", "Rent & Invest")
		hasRentOut := len(result.Points) > 0 && result.Points[0].RentOutNetGain != nil
		if hasRentOut {
			header += fmt.Sprintf(" %15s", "Buy & Rent Out")
		}
		fmt.Println(header)
		for _, p := range result.Points {
			line := fmt.Sprintf("%-10s %15s %15s", p.Value.StringFixed(4), p.OccupyNetGain.StringFixed(0), p.RentNetGain.StringFixed(0))
			if hasRentOut && p.RentOutNetGain != nil {
				line += fmt.Sprintf(" %15s", p.RentOutNetGain.StringFixed(0))
			}
			fmt.Println(line)
		}
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart [input-file]",
	Short: "Render the cumulative-position comparison as a PNG line chart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		assumptions, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		cmp, err := engine.ComputeComparison(assumptions)
		if err != nil {
			log.Fatal(err)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if err := output.WriteComparisonChart(cmp, outputFile); err != nil {
			log.Fatalf("Failed to write chart: %v", err)
		}
		fmt.Printf("Chart written to %s\n", outputFile)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Explore assumptions interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		assumptions, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		program := tea.NewProgram(tui.NewModel(assumptions), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	validateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	breakEvenCmd.Flags().String("target", "rent", "Parameter to solve for (rent, appreciation)")
	breakEvenCmd.Flags().Float64("tolerance", 0, "Net-gain gap in dollars considered converged (default 100)")
	breakEvenCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	sensitivityCmd.Flags().StringP("parameter", "p", "appreciation", "Assumption to sweep")
	sensitivityCmd.Flags().Float64("spread", 0.02, "Half-width of the sweep around the base value")
	sensitivityCmd.Flags().Int("steps", 9, "Number of evenly spaced points")
	sensitivityCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	chartCmd.Flags().StringP("output", "o", "comparison.png", "Output PNG path")
	chartCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	tuiCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
