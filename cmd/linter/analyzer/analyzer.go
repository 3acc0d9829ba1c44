package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "forbiddencalls"
	analyzerDoc  = "reports panic, log.Fatal and os.Exit outside main, and environment reads outside the config package"

	configPackage = "config"
)

// Analyzer checks for forbidden function calls in the code.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		callExpr := node.(*ast.CallExpr)
		checkCall(pass, callExpr)
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, callExpr *ast.CallExpr) {
	switch fn := callExpr.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" && isBuiltin(pass, fn) {
			pass.Reportf(callExpr.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		checkSelectorExpr(pass, fn, callExpr)
	}
}

func isBuiltin(pass *analysis.Pass, ident *ast.Ident) bool {
	if pass.TypesInfo == nil {
		return true
	}
	_, ok := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return ok
}

func checkSelectorExpr(pass *analysis.Pass, selectorExpr *ast.SelectorExpr, callExpr *ast.CallExpr) {
	ident, ok := selectorExpr.X.(*ast.Ident)
	if !ok || pass.TypesInfo == nil {
		return
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return
	}

	pkgPath := pkgName.Imported().Path()
	fn := selectorExpr.Sel.Name

	switch {
	case pkgPath == "log" && fn == "Fatal":
		if !isInMainFunction(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "log.Fatal is forbidden outside main function")
		}
	case pkgPath == "os" && fn == "Exit":
		if !isInMainFunction(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "os.Exit is forbidden outside main function")
		}
	case pkgPath == "os" && (fn == "Getenv" || fn == "LookupEnv"):
		if pass.Pkg.Name() != configPackage {
			pass.Reportf(callExpr.Pos(), "os.%s is forbidden outside the config package", fn)
		}
	}
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	for _, f := range pass.Files {
		for _, decl := range f.Decls {
			if funcDecl, ok := decl.(*ast.FuncDecl); ok {
				if funcDecl.Name.Name == "main" && funcDecl.Recv == nil && isNodeInsideFunc(node, funcDecl) {
					return true
				}
			}
		}
	}
	return false
}

func isNodeInsideFunc(target ast.Node, funcDecl *ast.FuncDecl) bool {
	return funcDecl.Body != nil && funcDecl.Body.Pos() <= target.Pos() && target.End() <= funcDecl.Body.End()
}
