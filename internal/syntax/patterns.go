// internal/syntax/patterns.go
package syntax

// Pattern pairs a literal keyword with the style name it is drawn in.
type Pattern struct {
	Literal string
	Style   string
}

// Patterns is the static keyword table. It is deliberately permissive across
// source languages; scanning is first-match-wins in declaration order, so
// duplicate literals resolve to their earliest entry.
var Patterns = []Pattern{
	{"#include", "Preproc"}, {"#define", "Preproc"}, {"#ifdef", "Preproc"},
	{"#ifndef", "Preproc"}, {"#endif", "Preproc"},

	{"int", "Keyword"}, {"char", "Keyword"}, {"void", "Keyword"},
	{"return", "Keyword"}, {"for", "Keyword"}, {"while", "Keyword"},
	{"if", "Keyword"}, {"else", "Keyword"}, {"struct", "Keyword"},
	{"enum", "Keyword"}, {"typedef", "Keyword"}, {"static", "Keyword"},
	{"const", "Keyword"},

	{"size_t", "Type"}, {"uint32_t", "Type"}, {"int32_t", "Type"},
	{"bool", "Type"}, {"float", "Type"}, {"double", "Type"},

	{"def", "Flow"}, {"class", "Flow"}, {"import", "Flow"},
	{"from", "Flow"}, {"lambda", "Flow"}, {"try", "Flow"},
	{"except", "Flow"}, {"finally", "Flow"}, {"with", "Flow"},
	{"True", "Flow"}, {"False", "Flow"}, {"None", "Flow"},

	{"public", "Access"}, {"private", "Access"}, {"protected", "Access"},
	{"interface", "Access"}, {"extends", "Access"}, {"implements", "Access"},
	{"new", "Access"}, {"super", "Access"},

	{"function", "Script"}, {"var", "Script"}, {"let", "Script"},
	{"async", "Script"}, {"await", "Script"},
}
