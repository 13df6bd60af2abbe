package stockpile

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op       Operation
	children []QueryNode
	names    []string
}

type leafNode struct {
	names []string
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, names []string) *compositeNode {
	return &compositeNode{
		op:       op,
		children: make([]QueryNode, 0),
		names:    names,
	}
}

func newLeafNode(names []string) *leafNode {
	return &leafNode{names: names}
}

// nameMask builds the bit mask for a node's component names at evaluation
// time. The second result is false when any name has no interned bit, either
// because it was never attached anywhere or because it lies past the schema bound.
func nameMask(names []string, storage Storage) (mask.Mask, bool) {
	var m mask.Mask
	complete := true
	for _, name := range names {
		bit, ok := storage.CategoryBit(name)
		if !ok {
			complete = false
			continue
		}
		m.Mark(bit)
	}
	return m, complete
}

func (n *compositeNode) Evaluate(entityMask mask.Mask, storage Storage) bool {
	nodeMask, complete := nameMask(n.names, storage)

	switch n.op {
	case OpAnd:
		// A name without a bit is carried by no queryable entity.
		if !complete {
			return false
		}
		if !entityMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(entityMask, storage) {
				return false
			}
		}
		return true

	case OpOr:
		if entityMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask, storage) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return entityMask.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask, storage) {
				return false
			}
		}
		return !entityMask.ContainsAny(nodeMask)
	}
	return false
}

func (n *leafNode) Evaluate(entityMask mask.Mask, storage Storage) bool {
	nodeMask, complete := nameMask(n.names, storage)
	if !complete {
		return false
	}
	return entityMask.ContainsAll(nodeMask)
}

func (q *query) And(items ...interface{}) QueryNode {
	names, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, names)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	names, children := q.processItems(items...)
	node := newCompositeNode(OpOr, names)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	names, children := q.processItems(items...)
	node := newCompositeNode(OpNot, names)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]string, []QueryNode) {
	names := make([]string, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case string:
			names = append(names, v)
		case []string:
			names = append(names, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return names, children
}

func (q *query) Evaluate(entityMask mask.Mask, storage Storage) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(entityMask, storage)
}
