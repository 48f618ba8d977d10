package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/libcore/internal/arith"
)

// calcOps maps operation names to helpers.
var calcOps = map[string]func(int, int) int{
	"add":            arith.Add,
	"multiply":       arith.Multiply,
	"sum-of-squares": arith.SumOfSquares,
	"square-of-sum":  arith.SquareOfSum,
}

// CalcResult is the JSON payload of the calc command.
type CalcResult struct {
	Op     string `json:"op"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Result int    `json:"result"`
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <add|multiply|sum-of-squares|square-of-sum> <x> <y>",
		Short: "Evaluate an arithmetic helper",
		Long: `Evaluate one of the arithmetic helpers on two integers.

Use -- before negative operands so they are not read as flags.

Examples:
  libcore calc sum-of-squares 3 4
  libcore calc square-of-sum -- -3 4
  libcore calc multiply 6 7 --format json`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCalc(opts *RootOptions, args []string, cmd *cobra.Command) error {
	name := args[0]
	fn, ok := calcOps[name]
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown operation %q", name))
	}

	x, err := strconv.Atoi(args[1])
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid x", err)
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid y", err)
	}

	result := CalcResult{Op: name, X: x, Y: y, Result: fn(x, y)}
	opts.Logger.Debug("calc", "op", name, "x", x, "y", y, "result", result.Result)

	out := opts.formatter(cmd)
	if out.JSON() {
		return out.Success(result)
	}
	return out.Success(result.Result)
}
