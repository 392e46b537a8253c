// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prismtest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/source"
)

// Dump renders a decoded result as indented text, for golden tests.
//
// Constants are printed by name, and locations as line:column ranges
// followed by the text they cover.
func Dump(r *decode.Result) string {
	d := dumper{r: r}
	for _, diag := range r.Diagnostics {
		fmt.Fprintf(&d.out, "%v %d %s: %q\n", diag.Level, diag.Type, d.span(diag.Span), diag.Message)
	}
	for _, comment := range r.Comments {
		fmt.Fprintf(&d.out, "comment %v %s\n", comment.Kind, d.span(comment.Span))
	}
	for _, magic := range r.MagicComments {
		fmt.Fprintf(&d.out, "magic %s = %s\n", d.span(magic.Key), d.span(magic.Value))
	}
	if !r.DataLoc.IsZero() {
		fmt.Fprintf(&d.out, "data %s\n", d.span(r.DataLoc))
	}
	d.node(r.Root, 0)
	return d.out.String()
}

type dumper struct {
	r   *decode.Result
	out strings.Builder
}

func (d *dumper) indent(depth int) {
	d.out.WriteString(strings.Repeat("  ", depth))
}

func (d *dumper) node(n ast.Node, depth int) {
	fmt.Fprintf(&d.out, "%v %s", n.Kind(), d.span(n.Span()))
	if flags := ast.FormatFlags(n.Kind(), n.Flags()); flags != "" {
		fmt.Fprintf(&d.out, " [%s]", flags)
	}
	d.out.WriteByte('\n')

	for _, f := range n.Fields() {
		d.indent(depth + 1)
		fmt.Fprintf(&d.out, "%s: ", f.Name)
		switch v := f.Value.(type) {
		case ast.Node:
			d.node(v, depth+1)
		case []ast.Node:
			fmt.Fprintf(&d.out, "(%d)\n", len(v))
			for i, child := range v {
				d.indent(depth + 2)
				fmt.Fprintf(&d.out, "%d: ", i)
				d.node(child, depth+2)
			}
		case nil:
			d.out.WriteString("-\n")
		case ast.ConstantID:
			if v.IsZero() {
				d.out.WriteString("-\n")
			} else {
				fmt.Fprintf(&d.out, "%q\n", d.r.Name(v))
			}
		case []ast.ConstantID:
			names := d.r.Names(v)
			quoted := make([]string, len(names))
			for i, name := range names {
				quoted[i] = strconv.Quote(name)
			}
			fmt.Fprintf(&d.out, "[%s]\n", strings.Join(quoted, ", "))
		case source.Span:
			d.out.WriteString(d.span(v))
			d.out.WriteByte('\n')
		case string:
			fmt.Fprintf(&d.out, "%q\n", v)
		case float64:
			fmt.Fprintf(&d.out, "%s\n", strconv.FormatFloat(v, 'g', -1, 64))
		default:
			fmt.Fprintf(&d.out, "%v\n", v)
		}
	}
}

func (d *dumper) span(s source.Span) string {
	if s.IsZero() {
		return "-"
	}
	start, end := s.StartLoc(), s.EndLoc()
	return fmt.Sprintf("(%d:%d)-(%d:%d) %q", start.Line, start.Column, end.Line, end.Column, s.Text())
}
