package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/boundcalc/internal/calculator"
	"github.com/pengelbrecht/boundcalc/internal/styles"
)

var opAliases = map[calculator.Op][]string{
	calculator.OpAdd:      {"sum"},
	calculator.OpSubtract: {"sub"},
	calculator.OpMultiply: {"mul"},
	calculator.OpDivide:   {"div"},
}

var opSummaries = map[calculator.Op]string{
	calculator.OpAdd:      "Add two numbers",
	calculator.OpSubtract: "Subtract b from a",
	calculator.OpMultiply: "Multiply two numbers",
	calculator.OpDivide:   "Divide a by b",
}

// resultPayload is the --json output of an arithmetic command.
type resultPayload struct {
	Operation string  `json:"operation"`
	Symbol    string  `json:"symbol"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
}

func newOpCmd(a *app, op calculator.Op) *cobra.Command {
	return &cobra.Command{
		Use:     fmt.Sprintf("%s <a> <b>", op),
		Aliases: opAliases[op],
		Short:   opSummaries[op],
		Long: fmt.Sprintf(`%s.

Computes a %s b. Both operands must lie within %s.
Operands may use _ as a digit separator (1_000_000).

Examples:
  calc %s 8 2
  calc %s -- -6 3
  calc %s --json 2.5 4`, opSummaries[op], op.Symbol(), calculator.DefaultRange(), op, op, op),
		Args: operandArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOp(cmd, op, args)
		},
	}
}

func operandArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return &codedError{code: exitUsage, err: err}
	}
	return nil
}

func (a *app) runOp(cmd *cobra.Command, op calculator.Op, args []string) error {
	if err := a.setup(cmd); err != nil {
		return err
	}

	x, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	y, err := parseOperand(args[1])
	if err != nil {
		return err
	}

	result, err := a.calc.Apply(op, x, y)
	if err != nil {
		a.logger.Warn("operation rejected", "op", op, "a", x, "b", y, "error", err)
		return err
	}
	a.logger.Debug("operation computed", "op", op, "a", x, "b", y, "result", result)

	return a.printResult(cmd.OutOrStdout(), op, x, y, result)
}

// parseOperand accepts any float literal. Literals too large for float64
// come back as infinities so the calculator reports them as out of range.
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, usageError("operand %q is not a number", s)
	}
	return v, nil
}

func (a *app) printResult(w io.Writer, op calculator.Op, x, y, result float64) error {
	if a.json {
		payload := resultPayload{
			Operation: op.String(),
			Symbol:    op.Symbol(),
			A:         x,
			B:         y,
			Result:    result,
		}
		enc := json.NewEncoder(w)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	text := strconv.FormatFloat(result, 'f', a.precision, 64)
	if a.color {
		text = styles.RenderResult(text)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
