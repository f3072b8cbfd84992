package value

// Node is the heap-resident record behind a Value handle. Its kind is fixed
// at construction: mutating a container node changes its payload contents,
// never its kind. Payload access goes through the Value accessors, which
// check the kind first; Node itself exposes only the tag.
type Node struct {
	kind Kind

	b   bool
	i   int64
	f   float64
	s   string
	arr []Value
	obj map[string]Value
}

func (n *Node) Kind() Kind { return n.kind }

// The null node and the two bool nodes are process-wide singletons. They are
// immutable, so sharing them across handles (and goroutines) is safe; all
// handles built from null, true or false alias the same node.
var (
	nullNode  = &Node{kind: NullKind}
	trueNode  = &Node{kind: BoolKind, b: true}
	falseNode = &Node{kind: BoolKind}
)
