package adorn

// Synthetic anchor nodes. Unconstrained middlewares are contained between
// them; wildcard anchors place a middleware outside the containment by
// ordering it before the head or after the tail. Both are stripped from
// the sorted output.
const (
	anchorHead = "__head__"
	anchorTail = "__tail__"
)

// orderGraph is the ephemeral constraint graph built on every sort. An
// edge (from, to) constrains from to precede to in the output.
type orderGraph struct {
	nodes map[string]*graphNode
	order []string // preserve first-seen order for deterministic output
}

type graphNode struct {
	name string
	// preceding holds the tails of incoming edges: every name that must
	// appear before this node. Append order is deterministic because
	// edges are added in registration order.
	preceding []string
}

func newOrderGraph() *orderGraph {
	return &orderGraph{
		nodes: make(map[string]*graphNode),
	}
}

// ensure returns the node for name, creating it in first-seen order.
func (g *orderGraph) ensure(name string) *graphNode {
	if n, ok := g.nodes[name]; ok {
		return n
	}

	n := &graphNode{name: name}
	g.nodes[name] = n
	g.order = append(g.order, name)

	return n
}

// addEdge constrains from to precede to.
func (g *orderGraph) addEdge(from, to string) {
	g.ensure(from)
	n := g.ensure(to)
	n.preceding = append(n.preceding, from)
}

// sort returns all node names in an order consistent with every edge.
// Nodes not separated by constraints keep their first-seen order (FIFO),
// which makes the output deterministic for a fixed set of registrations.
// Returns an error if the constraints are cyclic.
func (g *orderGraph) sort() ([]string, error) {
	visited := make(map[string]bool)
	visiting := make(map[string]bool)
	result := make([]string, 0, len(g.nodes))

	for _, name := range g.order {
		if err := g.visit(name, visited, visiting, &result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// visit performs DFS, emitting a node after everything constrained to
// precede it.
func (g *orderGraph) visit(name string, visited, visiting map[string]bool, result *[]string) error {
	if visited[name] {
		return nil
	}

	if visiting[name] {
		cycle := []string{name}

		return ErrCircularDependency(cycle)
	}

	n := g.nodes[name]
	visiting[name] = true

	for _, before := range n.preceding {
		if err := g.visit(before, visited, visiting, result); err != nil {
			return err
		}
	}

	visiting[name] = false
	visited[name] = true
	*result = append(*result, name)

	return nil
}
