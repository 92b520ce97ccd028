package graph

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const (
	KindInvalid = "invalid"
	anonymous   = "anonymous"
)

// Operation describes the operation a request selected, for logs and
// metrics.
type Operation struct {
	Kind   string
	Name   string
	Fields []string
}

// DescribeOperation parses query and picks the operation named
// operationName, or the only operation when the name is empty. Documents
// that do not parse or do not select an operation report KindInvalid.
func DescribeOperation(query, operationName string) Operation {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return Operation{Kind: KindInvalid, Name: anonymous}
	}

	op := doc.Operations.ForName(operationName)
	if op == nil {
		return Operation{Kind: KindInvalid, Name: anonymous}
	}

	out := Operation{Kind: string(op.Operation), Name: op.Name}
	if out.Name == "" {
		out.Name = anonymous
	}
	for _, sel := range op.SelectionSet {
		if f, ok := sel.(*ast.Field); ok {
			out.Fields = append(out.Fields, f.Name)
		}
	}
	return out
}
