package ast

// Item is the closed set of top-level declarations. Every consumer is
// expected to switch over all variants.
type Item interface {
	Node
	isItem()
}

func (*Struct) isItem() {}

func (*Enum) isItem() {}

func (*Function) isItem() {}

func (*TypeAlias) isItem() {}

func (*Scope) isItem() {}

func (*Principle) isItem() {}

func (*LegalTest) isItem() {}

func (*Declaration) isItem() {}
