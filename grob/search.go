package grob

import (
	"fmt"
	"regexp"
	"strings"
)

// compilePattern anchors a search pattern so that both an extra prefix
// and an extra suffix cause a miss. Patterns are regular expressions;
// callers escape literal dots themselves (node names routinely contain
// them).
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern = pattern + "$"
	}
	return regexp.Compile(pattern)
}

// FindNode returns the first node, depth-first in child order, whose
// full name matches the anchored pattern. Returns false for a nil tree,
// an invalid pattern, or no match.
func FindNode(root Node, pattern string) (Node, bool) {
	if root == nil {
		return nil, false
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, false
	}
	return findNode(root, re)
}

func findNode(n Node, re *regexp.Regexp) (Node, bool) {
	if re.MatchString(n.Name()) {
		return n, true
	}
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		if found, ok := findNode(c, re); ok {
			return found, true
		}
	}
	return nil, false
}

// FindAll returns every matching node in depth-first order. A nil tree
// or invalid pattern yields an empty result.
func FindAll(root Node, pattern string) []Node {
	if root == nil {
		return nil
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return nil
	}
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		if re.MatchString(n.Name()) {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(root)
	return out
}

// EscapeID escapes the characters of a node name that are significant
// inside a CSS id selector. Renderer ids routinely embed dots
// ("geom_rect.rect.207"), which would otherwise read as class
// separators.
func EscapeID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', ':', '[', ']', '(', ')', ',', '#':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CSSSelector builds the selector addressing the named node:
// "tag#escaped-name". When maxElements is positive the selector is
// capped with :nth-child(-n+K), restricting the match to the first K
// elements.
func CSSSelector(name, tag string, maxElements int) string {
	sel := fmt.Sprintf("%s#%s", tag, EscapeID(name))
	if maxElements > 0 {
		sel += fmt.Sprintf(":nth-child(-n+%d)", maxElements)
	}
	return sel
}

// ChildSelector builds the selector addressing one concrete child
// element of the named container: "#escaped-name tag:nth-child(N)".
// Positions are 1-based per CSS.
func ChildSelector(name, tag string, position int) string {
	return fmt.Sprintf("#%s %s:nth-child(%d)", EscapeID(name), tag, position)
}
