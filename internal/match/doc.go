// Package match provides identifier normalization, Levenshtein distance and
// "did you mean" ranking for names that fail to resolve against a dictionary.
package match
