package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentBar  = "│   "
	indentNone = "    "

	// statusColumn is where file statuses start.
	statusColumn = 30
)

// TreeNode is a directory or file in a rendered report tree.
type TreeNode struct {
	Name     string
	Status   string
	IsDir    bool
	Children []*TreeNode

	index map[string]*TreeNode
}

func newDirNode(name string) *TreeNode {
	return &TreeNode{Name: name, IsDir: true, index: map[string]*TreeNode{}}
}

// insert adds the file at the slash-separated path, creating parents.
func (n *TreeNode) insert(path, status string) {
	dir, rest, nested := strings.Cut(path, "/")
	if !nested {
		n.child(dir, false).Status = status
		return
	}
	n.child(dir, true).insert(rest, status)
}

// child returns the named child, creating it if needed. A file node that
// later turns out to have entries below it, as when a directory failed and
// its files were reported too, becomes a directory that keeps its status.
func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	if c, ok := n.index[name]; ok {
		if isDir && !c.IsDir {
			c.IsDir = true
			c.index = map[string]*TreeNode{}
		}
		return c
	}
	c := &TreeNode{Name: name}
	if isDir {
		c = newDirNode(name)
	}
	n.index[name] = c
	n.Children = append(n.Children, c)
	return c
}

// sorted returns children with directories first, then by name.
func (n *TreeNode) sorted() []*TreeNode {
	out := append([]*TreeNode(nil), n.Children...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDir != out[j].IsDir {
			return out[i].IsDir
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// RenderFileTree renders files under root, each followed by its status.
// Files maps relative paths to statuses.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	tree := newDirNode(root)
	for path, status := range files {
		tree.insert(filepath.ToSlash(path), status)
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(root + "/"))
	sb.WriteString("\n")
	writeChildren(&sb, tree, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, dir *TreeNode, indent string) {
	children := dir.sorted()
	for i, c := range children {
		last := i == len(children)-1

		branch, next := branchMid, indent+indentBar
		if last {
			branch, next = branchEnd, indent+indentNone
		}

		line := indent + branch + c.Name
		if c.IsDir {
			line += "/"
		}
		if c.Status != "" {
			pad := max(statusColumn-len([]rune(line)), 2)
			line += strings.Repeat(" ", pad) + StatusStyle(c.Status).Render(c.Status)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if c.IsDir {
			writeChildren(sb, c, next)
		}
	}
}
