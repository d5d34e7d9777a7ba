// Package main hosts the pqctl CLI.
//
// pqctl replays TOML operation scripts against a fresh in-memory queue
// registry and prints what each step did and what the queues hold afterwards.
// Nothing survives the process; scripts are the only input.
package main
