package dtree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a depth-indented rendering of the subtree rooted at root to
// w, one node per line prefixed with "| " per depth level, in the style
// of the reference implementation's debug-only tree printer. Dump is not
// used by the reduction engine; it exists for tests.
func Dump(w io.Writer, t *Tree, root int) error {
	return dump(w, t, root, 0)
}

func dump(w io.Writer, t *Tree, idx, depth int) error {
	n, err := t.at(idx)
	if err != nil {
		return fmt.Errorf("dtree: Dump: %w", err)
	}

	prefix := strings.Repeat("| ", depth)
	rev := ""
	if n.IsReverse {
		rev = "r"
	}
	fmt.Fprintf(w, "%s%s Node: %d%s\n", prefix, n.Kind, n.NID, rev)

	switch n.Kind {
	case KindChain:
		conductor := n.ChildHeadIdx
		for conductor != -1 {
			child, err := t.at(conductor)
			if err != nil {
				return fmt.Errorf("dtree: Dump: %w", err)
			}
			if err := dump(w, t, conductor, depth+1); err != nil {
				return err
			}
			conductor = child.SiblingIdx
		}
	case KindSplit:
		for _, c := range n.ChildrenIdx {
			if err := dump(w, t, c, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
