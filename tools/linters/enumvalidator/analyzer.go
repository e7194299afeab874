package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that goal enum fields only use defined constants, not string literals",
	Run:  run,
}

// enumTypes are the named string types whose fields must be set from constants.
var enumTypes = map[string]bool{
	"GoalPriority": true,
	"GoalType":     true,
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				checkAssign(pass, node)
			case *ast.KeyValueExpr:
				checkKeyValue(pass, node)
			}
			return true
		})
	}
	return nil, nil
}

func checkAssign(pass *analysis.Pass, assign *ast.AssignStmt) {
	for i, lhs := range assign.Lhs {
		if i >= len(assign.Rhs) {
			continue
		}
		sel, ok := lhs.(*ast.SelectorExpr)
		if !ok || !isEnum(pass.TypesInfo.TypeOf(sel)) {
			continue
		}
		if isStringLiteral(assign.Rhs[i]) {
			pass.Reportf(assign.Pos(),
				"enum field %s assigned string literal; use defined constant instead",
				sel.Sel.Name)
		}
	}
}

// checkKeyValue covers struct literals such as Goal{Priority: "high"}.
func checkKeyValue(pass *analysis.Pass, kv *ast.KeyValueExpr) {
	key, ok := kv.Key.(*ast.Ident)
	if !ok || !isStringLiteral(kv.Value) {
		return
	}
	obj, ok := pass.TypesInfo.Uses[key].(*types.Var)
	if !ok || !obj.IsField() || !isEnum(obj.Type()) {
		return
	}
	pass.Reportf(kv.Pos(),
		"enum field %s assigned string literal; use defined constant instead",
		key.Name)
}

func isEnum(t types.Type) bool {
	if named, ok := t.(*types.Named); ok {
		return enumTypes[named.Obj().Name()]
	}
	return false
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
