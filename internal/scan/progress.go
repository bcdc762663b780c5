package scan

// ProgressEvent describes one step of scan progress.
type ProgressEvent struct {
	// Current is the number of work items consumed so far.
	Current int

	// Total is the expected number of work items, computed from the sizing
	// enumeration. For data scans this is an estimate (text columns times
	// sample size) and the work stream usually undershoots it.
	Total int

	// Unit names what is being counted: "columns" or "datum".
	Unit string
}

// ProgressFunc is called after each work item is processed.
type ProgressFunc func(event ProgressEvent)
