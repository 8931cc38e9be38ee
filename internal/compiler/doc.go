// Package compiler drives the pipeline for every configured dictionary:
// load, resolve, generate and write. It also implements the check mode,
// which compares generated code with the files on disk, and the watch
// mode, which recompiles a revision when its dictionary changes.
package compiler
