package syntax

// maxCachedChildren bounds the size of interned nodes. Larger nodes are
// rarely identical and hashing them again would not pay off.
const maxCachedChildren = 3

// NodeCache interns structurally identical tokens and small nodes so that
// repeated fragments share storage. A cache is not safe for concurrent use;
// give each parse its own cache or none.
type NodeCache struct {
	tokens map[uint64][]*GreenToken
	nodes  map[uint64][]*GreenNode
	hits   int
}

// NewNodeCache creates an empty cache.
func NewNodeCache() *NodeCache {
	return &NodeCache{
		tokens: make(map[uint64][]*GreenToken),
		nodes:  make(map[uint64][]*GreenNode),
	}
}

// Token returns an interned token equal to tok, storing tok when none exists.
func (c *NodeCache) Token(tok *GreenToken) *GreenToken {
	bucket := c.tokens[tok.hash]
	for _, existing := range bucket {
		if existing.Equal(tok) {
			c.hits++
			return existing
		}
	}
	c.tokens[tok.hash] = append(bucket, tok)
	return tok
}

// Node returns an interned node equal to node when node is small enough.
func (c *NodeCache) Node(node *GreenNode) *GreenNode {
	if len(node.children) > maxCachedChildren {
		return node
	}
	bucket := c.nodes[node.hash]
	for _, existing := range bucket {
		if existing.Equal(node) {
			c.hits++
			return existing
		}
	}
	c.nodes[node.hash] = append(bucket, node)
	return node
}

// Hits returns the number of lookups answered from the cache.
func (c *NodeCache) Hits() int {
	return c.hits
}
