package semantic

import "github.com/openclassroom/jslite/pkg/ast"

// isAlwaysTruthy and isAlwaysFalsy are the only "type inference" the
// analyzer performs: inspecting a condition's literal class or bareword
// identifier. Anything else (a variable, a call, a binary expression) is
// neither — it is simply not flagged.

func isAlwaysTruthy(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.Literal:
		switch v.Kind {
		case ast.BooleanLiteral:
			return v.Value == true
		case ast.NumberLiteral:
			n, _ := v.Value.(float64)
			return n != 0
		case ast.StringLiteral:
			s, _ := v.Value.(string)
			return s != ""
		case ast.NullLiteral:
			return false
		}
	case *ast.Identifier:
		return v.Name == "true"
	}
	return false
}

func isAlwaysFalsy(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.Literal:
		switch v.Kind {
		case ast.BooleanLiteral:
			return v.Value == false
		case ast.NumberLiteral:
			n, _ := v.Value.(float64)
			return n == 0
		case ast.StringLiteral:
			s, _ := v.Value.(string)
			return s == ""
		case ast.NullLiteral:
			return true
		}
	case *ast.Identifier:
		return v.Name == "false" || v.Name == "undefined" || v.Name == "null"
	}
	return false
}
