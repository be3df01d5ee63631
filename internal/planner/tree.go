package planner

import (
	"fmt"
	"io"
	"strings"
)

// TreeNode is one line of a rendered artifact tree.
type TreeNode struct {
	Label    string
	Children []*TreeNode
}

// TreeItem pairs a target-relative slash-separated path with a trailing
// annotation such as "(created)".
type TreeItem struct {
	Path string
	Note string
}

// BuildTree groups items by their leading path segment under a root node,
// so sibling artifacts inside .agent/ or .github/ render together. Deeper
// paths stay on one line below their group.
func BuildTree(root string, items []TreeItem) *TreeNode {
	rootNode := &TreeNode{Label: root}
	groups := make(map[string]*TreeNode)

	for _, item := range items {
		head, rest, nested := strings.Cut(item.Path, "/")
		if !nested {
			rootNode.Children = append(rootNode.Children, &TreeNode{Label: label(item.Path, item.Note)})
			continue
		}
		group, ok := groups[head]
		if !ok {
			group = &TreeNode{Label: head + "/"}
			groups[head] = group
			rootNode.Children = append(rootNode.Children, group)
		}
		group.Children = append(group.Children, &TreeNode{Label: label(rest, item.Note)})
	}
	return rootNode
}

func label(path, note string) string {
	if note == "" {
		return path
	}
	return path + " " + note
}

// PrintTree renders the root and its descendants with box-drawing
// connectors, indented two spaces.
func PrintTree(w io.Writer, root *TreeNode) {
	fmt.Fprintf(w, "  %s\n", root.Label)
	for i, child := range root.Children {
		printNode(w, child, "  ", i == len(root.Children)-1)
	}
}

func printNode(w io.Writer, node *TreeNode, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, connector, node.Label)

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	for i, child := range node.Children {
		printNode(w, child, childPrefix, i == len(node.Children)-1)
	}
}
