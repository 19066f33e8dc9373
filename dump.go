package htmlkit

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump pretty-prints a node tree for template debugging. Elements show
// their tag, flags and attribute counts; other children show their kind.
// The output is diagnostic only and makes no formatting guarantees.
func Dump(n Node) string {
	tree := treeprint.New()
	tree.SetValue(dumpLabel(n))
	if e, ok := n.(*Element); ok {
		for _, child := range e.children {
			dumpItem(tree, child)
		}
	}
	return tree.String()
}

func dumpItem(branch treeprint.Tree, item Item) {
	switch v := item.(type) {
	case *Element:
		if len(v.children) == 0 {
			branch.AddNode(dumpLabel(v))
			return
		}
		sub := branch.AddBranch(dumpLabel(v))
		for _, child := range v.children {
			dumpItem(sub, child)
		}

	case Node:
		branch.AddNode(dumpLabel(v))

	case string:
		branch.AddNode(fmt.Sprintf("%q", truncate(v, 40)))

	case []Item:
		sub := branch.AddBranch(fmt.Sprintf("list(%d)", len(v)))
		for _, child := range v {
			dumpItem(sub, child)
		}

	default:
		if _, ok := asFunc(item); ok {
			branch.AddNode("func(ctx)")
			return
		}
		branch.AddNode(fmt.Sprintf("%T", item))
	}
}

func dumpLabel(n Node) string {
	switch v := n.(type) {
	case *Element:
		label := "<" + v.tag + ">"
		if v.selfClosing {
			label = "<" + v.tag + "/>"
		}
		if len(v.attrs) > 0 {
			label += fmt.Sprintf(" attrs=%d", len(v.attrs))
		}
		if len(v.data) > 0 {
			label += fmt.Sprintf(" data=%d", len(v.data))
		}
		if v.escape {
			label += " escaped"
		}
		if v.sensitive {
			label += " ws-sensitive"
		}
		return label
	case *Raw:
		return fmt.Sprintf("raw(%d parts)", len(v.parts))
	case *JSONData:
		return "json-island"
	case *Markdown:
		return "markdown"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
