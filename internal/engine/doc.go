// Package engine wires the decision components behind one facade: classify
// content, rank platforms, select and customize a preset, and validate
// against platform constraints.
//
// An Engine holds only the immutable catalog and a logger, so one instance
// serves any number of concurrent callers. Every method is a pure function
// of its inputs plus the catalog; results are built fresh per call and hard
// errors are reserved for structural problems (bad metrics, unknown
// platform, empty preset list).
package engine
