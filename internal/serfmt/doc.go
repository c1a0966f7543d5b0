// Package serfmt is a minimal reader for a restricted subset of the
// "request <ident> { <stmts> }" block grammar — just far enough to drive
// the bundled example fixtures end-to-end. The full expression grammar,
// the surface-syntax parser proper, is an explicit external collaborator
// out of scope for this module; this reader exists only so
// cmd/serialcheck has a runnable, non-bundled input path.
//
// Grammar recognized:
//
//	program     := { request } ;
//	request     := "request" IDENT "{" { local } { stmt | return } "}" ;
//	local       := "local" IDENT ";" ;
//	stmt        := assign | yield | if | while ;
//	assign      := IDENT ":=" expr ";" ;
//	yield       := "yield" ";" ;
//	return      := "return" expr ";" ;
//	if          := "if" "(" cond ")" "{" { stmt } "}" [ "else" "{" { stmt } "}" ] ;
//	while       := "while" "(" cond ")" "{" { stmt } "}" ;
//	cond        := expr "=" expr ;
//	expr        := term { ("+"|"-") term } ;
//	term        := IDENT | INT ;
//
// Any identifier not declared with "local" is a global. A "return" is
// accepted only directly in a request body, not inside an if or while
// block; the last one read sets the request's return expression. Request
// names and variable names must be identifiers ([A-Za-z_][A-Za-z0-9_]*);
// integers are unsigned base-10 literals (a leading "-" is not accepted).
package serfmt
