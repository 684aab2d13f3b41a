// Package x declares a type whose short name clashes with the one in
// typeidtest/a/x.
package x

type Pos struct{ X int }
