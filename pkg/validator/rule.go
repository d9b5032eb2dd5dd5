package validator

// Predicate reports whether a field value is acceptable.
type Predicate func(value any) bool

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	Check   Predicate
	Message string
}

// NewRule is shorthand for Rule{Check: check, Message: message}.
func NewRule(check Predicate, message string) Rule {
	return Rule{Check: check, Message: message}
}

// Node is one level of a validation schema. A leaf holds an ordered list of rules
// applied to a single field value; a branch maps field names to child nodes.
type Node struct {
	rules  []Rule
	fields map[string]Node
	leaf   bool
}

// Leaf creates a node validating a single field with rules applied in order.
func Leaf(rules ...Rule) Node {
	return Node{rules: rules, leaf: true}
}

// Fields creates a node validating the nested fields of a mapping.
func Fields(fields map[string]Node) Node {
	return Node{fields: fields}
}

func (n Node) IsLeaf() bool { return n.leaf }

// Rules returns the rules of a leaf node.
func (n Node) Rules() []Rule { return n.rules }

// Children returns the child nodes of a branch node.
func (n Node) Children() map[string]Node { return n.fields }

// Schemas maps an action type to the schema its payload must satisfy.
// Root nodes are expected to be branches; a leaf root validates nothing.
type Schemas map[string]Node

// For returns the schema registered for the payload's "type" field.
func (s Schemas) For(payload map[string]any) (Node, bool) {
	typ, _ := payload["type"].(string)
	if typ == "" || s == nil {
		return Node{}, false
	}
	n, ok := s[typ]
	return n, ok
}

// Merge returns a new set of schemas where entries of other replace entries of s.
func (s Schemas) Merge(other Schemas) Schemas {
	if s == nil && other == nil {
		return nil
	}
	out := make(Schemas, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
