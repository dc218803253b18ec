// Package log provides the small, leveled logging interface used by the graph,
// tool and memory packages.
//
// Every component takes a Logger and falls back to the package-level default
// when none is given. Messages use printf-style formatting and follow the
// "[Component] message" convention:
//
//	logger := log.NewDefaultLogger(log.LogLevelDebug)
//	logger.Info("[ToolNode] calling tool %s", name)
//
// Three backends are available:
//
//   - DefaultLogger writes through the standard library log package.
//   - GologLogger forwards to a github.com/kataras/golog logger.
//   - ZerologLogger forwards to a github.com/rs/zerolog logger.
//
// New picks one of them from a backend name, which is how the config package
// wires LOG_BACKEND and LOG_LEVEL.
package log
