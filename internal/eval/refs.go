package eval

import (
	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// ColumnRefs parses expr and collects the field names the expression selects
// off row variables, which are the column names it depends on. Selects hanging
// directly off the root list "_" are excluded; those fail in CEL with their
// own message. A parse failure is returned so the caller can report it
// before evaluation.
func ColumnRefs(env *cel.Env, expr string) ([]string, error) {
	ast, issues := env.Parse(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, err
	}

	var refs []string
	seen := make(map[string]bool)
	walkExpr(parsed.GetExpr(), func(e *exprpb.Expr) {
		sel := e.GetSelectExpr()
		if sel == nil || sel.Operand == nil {
			return
		}
		// Only selects whose operand is a plain identifier other than the
		// root binding count as column references (comprehension row vars).
		ident := sel.Operand.GetIdentExpr()
		if ident == nil || ident.Name == "_" {
			return
		}
		if !seen[sel.Field] {
			seen[sel.Field] = true
			refs = append(refs, sel.Field)
		}
	})
	return refs, nil
}

// UnknownColumns returns the refs that are not selection column labels,
// preserving reference order.
func UnknownColumns(refs, labels []string) []string {
	known := make(map[string]bool, len(labels))
	for _, l := range labels {
		known[l] = true
	}
	var unknown []string
	for _, r := range refs {
		if !known[r] {
			unknown = append(unknown, r)
		}
	}
	return unknown
}

// walkExpr visits every node of a parsed CEL expression tree.
func walkExpr(e *exprpb.Expr, visit func(*exprpb.Expr)) {
	if e == nil {
		return
	}
	visit(e)

	switch e.ExprKind.(type) {
	case *exprpb.Expr_SelectExpr:
		walkExpr(e.GetSelectExpr().GetOperand(), visit)
	case *exprpb.Expr_CallExpr:
		call := e.GetCallExpr()
		walkExpr(call.GetTarget(), visit)
		for _, arg := range call.GetArgs() {
			walkExpr(arg, visit)
		}
	case *exprpb.Expr_ListExpr:
		for _, elem := range e.GetListExpr().GetElements() {
			walkExpr(elem, visit)
		}
	case *exprpb.Expr_StructExpr:
		for _, entry := range e.GetStructExpr().GetEntries() {
			walkExpr(entry.GetMapKey(), visit)
			walkExpr(entry.GetValue(), visit)
		}
	case *exprpb.Expr_ComprehensionExpr:
		comp := e.GetComprehensionExpr()
		walkExpr(comp.GetIterRange(), visit)
		walkExpr(comp.GetAccuInit(), visit)
		walkExpr(comp.GetLoopCondition(), visit)
		walkExpr(comp.GetLoopStep(), visit)
		walkExpr(comp.GetResult(), visit)
	}
}
