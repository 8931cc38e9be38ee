// Package dictionary loads QuickFIX-style XML dictionaries into an ordered
// element tree and identifies the protocol revision they describe.
package dictionary
