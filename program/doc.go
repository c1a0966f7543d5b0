// Package program defines the AST a concurrent request body is parsed
// into: Const, Read, WriteLocal, WriteGlobal, Add, Sub, Eq, Seq, If, While,
// Yield, Choice, and Comment. Package lower consumes this
// AST and produces Kleene expressions; nothing in this package performs any
// semantic reduction itself — it is a plain value-typed tree, the request
// analog of a syntax tree with no attached evaluator.
package program
