package neuroview

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// logger is the package-wide structured logger. It stays at warn level
// until debug mode or SetLogger changes it.
var logger = newLogger()

// globalDebug enables the tree sanity checks in AddChild.
var globalDebug bool

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "neuroview"})
	l.SetLevel(log.WarnLevel)
	return l
}

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetLogLevel parses a level name (debug, info, warn, error) and applies it
// to the package logger. Unknown names fall back to warn.
func SetLogLevel(name string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("neuroview debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is deeper than any model/layer/neuron/mesh chain should get.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "node", n.Name, "depth", depth, "max", debugMaxTreeDepth)
	}
}
