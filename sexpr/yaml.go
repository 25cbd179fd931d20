package sexpr

import "gopkg.in/yaml.v3"

// ToYAML converts a tree to a YAML node. Lists become sequences, written in
// flow style when they hold only atoms. Quoted atoms keep double quotes.
func ToYAML(e Expr) *yaml.Node {
	switch e := e.(type) {
	case Atom:
		n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Text}
		if e.Quoted {
			n.Style = yaml.DoubleQuotedStyle
		}

		return n
	case List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, item := range e {
			if _, ok := item.(List); ok {
				n.Style = 0
			}

			n.Content = append(n.Content, ToYAML(item))
		}

		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
