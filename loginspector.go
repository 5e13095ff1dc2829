// Package loginspector inspects directories of feature review logs.
//
// Usage:
//
//	import "github.com/spektr-org/loginspector/inspector"
//
//	s := inspector.NewSession(inspector.WithCompressed(true))
//	if _, err := s.Load(ctx, "./logs"); err != nil {
//	    // *logfile.AccessError: nothing loaded
//	}
//	result, err := s.Select("snap")
//
// The engine groups the picked features of the selected logs along five
// dimensions (picks, first feature on page, membership level, existing
// feature count, featured on hub) and returns render-ready output: one chart
// series per dimension, a table and a text summary.
//
// Everything is computed locally from the loaded files; nothing is cached
// between selections.
package loginspector
