// Package script replays TOML-described queue operations against a registry.
//
// A script is a list of [[step]] tables:
//
//	[[step]]
//	action = "add-queue"
//	queue = "jobs"
//
//	[[step]]
//	action = "insert"
//	queue = "jobs"
//	element = "build"
//	priority = 10
//
//	[[step]]
//	action = "remove-between"
//	queue = "jobs"
//	low = 0
//	high = 5
//
// Run never stops early: each step gets a Result carrying either its output or
// its error. Nothing is written back to disk.
package script
