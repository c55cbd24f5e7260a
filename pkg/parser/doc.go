// Package parser holds the infrastructure shared by the hand-written
// recursive-descent parsers of every language: a token source over lexer
// output, a parser that records a flat event stream, markers for starting
// and completing nodes, error recovery into bogus nodes, and the sink that
// turns events into a lossless green tree.
//
// A language parser looks like this:
//
//	p := parser.New(lang, src, lex(src))
//	m := p.Start()
//	parseRules(p)
//	p.Expect(EOF)
//	m.Complete(p, ROOT)
//	result := p.Build(nil)
package parser
