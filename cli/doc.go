// Package cli is the interactive front end of the example programs.
//
// A REPL reads one line per turn, hands it to a TurnFunc and prints every
// reply the turn emits as "Assistant: ...". Typing one of the sentinels
// (quit, exit, q, bye) ends the loop. When a turn fails, the REPL runs the
// fallback prompt once and exits.
package cli
