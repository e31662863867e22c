// Package eval is the command engine: it compiles a user-entered CEL
// expression and evaluates it against the current selection, which is bound
// to the variable "_" as a list of row maps (column label → typed value).
// The engine is a pure pass-through to CEL: it grants no I/O, shell, or
// process capabilities, so the expression can only derive data from the
// selection it was handed.
package eval

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/tabx/pkg/frame"
)

// EvaluationError is any recoverable command-mode failure: a malformed
// expression, a reference to an unknown column, or a runtime error from the
// CEL program. The UI surfaces the message inline and leaves all view state
// untouched.
type EvaluationError struct {
	Expr string
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Evaluator compiles and evaluates CEL expressions against selections.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the standard extension libraries
// enabled, so expressions get strings/lists/math helpers out of the box.
func NewEvaluator() (*Evaluator, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("_", cel.DynType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
}

// Evaluate runs expr against the selection and shapes the result into a
// frame: lists of row maps become tables, lists of scalars a single column,
// maps a one-row table, and scalars a 1×1 frame. Any failure is returned as
// an *EvaluationError.
func (e *Evaluator) Evaluate(expr string, selection frame.Frame) (frame.Frame, error) {
	if expr == "" {
		return nil, &EvaluationError{Expr: expr, Err: fmt.Errorf("empty expression")}
	}

	labels := columnLabels(selection)

	// Pre-flight: reject references to columns the selection does not have,
	// before the program ever runs.
	refs, parseErr := ColumnRefs(e.env, expr)
	if parseErr != nil {
		return nil, &EvaluationError{Expr: expr, Err: parseErr}
	}
	if unknown := UnknownColumns(refs, labels); len(unknown) > 0 {
		return nil, &EvaluationError{Expr: expr, Err: fmt.Errorf("unknown column %q", unknown[0])}
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, &EvaluationError{Expr: expr, Err: fmt.Errorf("compilation error: %w", issues.Err())}
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, &EvaluationError{Expr: expr, Err: fmt.Errorf("program error: %w", err)}
	}

	result, _, err := prg.Eval(map[string]any{
		"_": bindSelection(selection),
	})
	if err != nil {
		return nil, &EvaluationError{Expr: expr, Err: fmt.Errorf("eval error: %w", err)}
	}

	return shapeResult(toGo(result), labels), nil
}

// bindSelection converts the selection into the CEL-facing form: one map per
// row keyed by column label. Unlabeled columns get positional keys so no
// cell becomes unreachable.
func bindSelection(sel frame.Frame) []any {
	rows, cols := sel.Shape()
	labels := columnLabels(sel)
	out := make([]any, rows)
	for r := 0; r < rows; r++ {
		row := make(map[string]any, cols)
		for c := 0; c < cols; c++ {
			row[labels[c]] = sel.Value(r, c)
		}
		out[r] = row
	}
	return out
}

func columnLabels(fr frame.Frame) []string {
	_, cols := fr.Shape()
	labels := make([]string, cols)
	for c := 0; c < cols; c++ {
		label := fr.ColumnLabel(c)
		if label == "" {
			label = fmt.Sprintf("col%d", c)
		}
		labels[c] = label
	}
	return labels
}
