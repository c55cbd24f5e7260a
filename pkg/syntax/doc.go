// Package syntax provides the lossless concrete syntax tree shared by every
// language in gocst.
//
// The tree has two layers:
//   - Green nodes and tokens: immutable, position-independent storage that
//     may be shared between trees. A green token owns its text including
//     leading and trailing trivia.
//   - Red nodes and tokens (SyntaxNode, SyntaxToken): cheap views over the
//     green tree that add an absolute offset and a parent pointer. They are
//     created on demand while walking and are never stored in the tree.
//
// Concatenating the text of every token of a tree, in order, reproduces the
// source text exactly.
package syntax
