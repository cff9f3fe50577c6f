package ast

import (
	"fmt"
	"strings"
)

// Print returns a tree-like string representation of the AST for
// debugging. Resolved symbol annotations are shown as name{binding}.
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

func printNode(sb *strings.Builder, node Node, indent int) {
	if node == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *Program:
		sb.WriteString(prefix + "Program\n")
		for _, d := range n.Decls {
			printNode(sb, d, indent+1)
		}

	case *VarDecl:
		sb.WriteString(fmt.Sprintf("%sVarDecl: %s %s\n", prefix, n.Type, identString(n.Name)))

	case *FormalDecl:
		sb.WriteString(fmt.Sprintf("%sFormal: %s %s\n", prefix, n.Type, identString(n.Name)))

	case *FuncDecl:
		sb.WriteString(fmt.Sprintf("%sFunc: %s %s\n", prefix, n.ReturnType, identString(n.Name)))
		for _, f := range n.Formals {
			printNode(sb, f, indent+1)
		}
		printBlock(sb, n.Body, indent+1)

	case *StructDecl:
		sb.WriteString(fmt.Sprintf("%sStruct: %s\n", prefix, identString(n.Name)))
		for _, f := range n.Fields {
			printNode(sb, f, indent+1)
		}

	case *AssignStmt:
		sb.WriteString(prefix + "Assign\n")
		printNode(sb, n.Assign.Target, indent+1)
		printNode(sb, n.Assign.Value, indent+1)

	case *PostIncStmt:
		sb.WriteString(prefix + "PostInc\n")
		printNode(sb, n.Target, indent+1)

	case *PostDecStmt:
		sb.WriteString(prefix + "PostDec\n")
		printNode(sb, n.Target, indent+1)

	case *IfStmt:
		sb.WriteString(prefix + "If\n")
		printNode(sb, n.Cond, indent+1)
		sb.WriteString(prefix + "  Then:\n")
		printBlock(sb, n.Then, indent+2)
		if n.Else != nil {
			sb.WriteString(prefix + "  Else:\n")
			printBlock(sb, n.Else, indent+2)
		}

	case *WhileStmt:
		sb.WriteString(prefix + "While\n")
		printNode(sb, n.Cond, indent+1)
		printBlock(sb, n.Body, indent+1)

	case *ReadStmt:
		sb.WriteString(prefix + "Read\n")
		printNode(sb, n.Target, indent+1)

	case *WriteStmt:
		sb.WriteString(prefix + "Write\n")
		printNode(sb, n.Value, indent+1)

	case *CallStmt:
		printNode(sb, n.Call, indent)

	case *ReturnStmt:
		sb.WriteString(prefix + "Return\n")
		if n.Value != nil {
			printNode(sb, n.Value, indent+1)
		}

	case *Ident:
		sb.WriteString(fmt.Sprintf("%sIdent: %s\n", prefix, identString(n)))

	case *IntLit:
		sb.WriteString(fmt.Sprintf("%sInt: %d\n", prefix, n.Value))

	case *StrLit:
		sb.WriteString(fmt.Sprintf("%sStr: %s\n", prefix, n.Value))

	case *BoolLit:
		sb.WriteString(fmt.Sprintf("%sBool: %t\n", prefix, n.Value))

	case *AccessExpr:
		sb.WriteString(prefix + "Access\n")
		printNode(sb, n.Target, indent+1)
		sb.WriteString(fmt.Sprintf("%s  Field: %s\n", prefix, identString(n.Field)))

	case *AssignExpr:
		sb.WriteString(prefix + "AssignExpr\n")
		printNode(sb, n.Target, indent+1)
		printNode(sb, n.Value, indent+1)

	case *CallExpr:
		sb.WriteString(fmt.Sprintf("%sCall: %s\n", prefix, identString(n.Callee)))
		for _, a := range n.Args {
			printNode(sb, a, indent+1)
		}

	case *UnaryExpr:
		sb.WriteString(fmt.Sprintf("%sUnary: %s\n", prefix, n.Op))
		printNode(sb, n.Operand, indent+1)

	case *BinaryExpr:
		sb.WriteString(fmt.Sprintf("%sBinary: %s\n", prefix, n.Op))
		printNode(sb, n.Left, indent+1)
		printNode(sb, n.Right, indent+1)

	default:
		sb.WriteString(fmt.Sprintf("%s<unknown node %T>\n", prefix, node))
	}
}

func printBlock(sb *strings.Builder, b *Block, indent int) {
	if b == nil {
		return
	}
	for _, d := range b.Decls {
		printNode(sb, d, indent)
	}
	for _, s := range b.Stmts {
		printNode(sb, s, indent)
	}
}

func identString(id *Ident) string {
	if id.Sym != nil {
		return fmt.Sprintf("%s{%s}", id.Name, id.Sym)
	}
	return id.Name
}
