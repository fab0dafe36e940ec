package constructs

import "github.com/constructhub/constructtree/internal/stacktrace"

// MetadataEntry is one append-only log entry recorded via AddMetadata.
type MetadataEntry struct {
	// Type classifies the entry, e.g. "aws:cdk:info" or "Warning".
	Type string
	// Data is the payload. Never nil — entries with nil data are dropped.
	Data any
	// Trace holds opaque call-stack frame descriptors, present only
	// when AddMetadata was called with StackTrace: true.
	Trace []string
}

// MetadataOptions configures a single AddMetadata call.
type MetadataOptions struct {
	// StackTrace captures the caller's stack as opaque frame
	// descriptors when true, eliding this library's own frame so the
	// topmost entry identifies the actual caller.
	StackTrace bool
}

// AddMetadata appends a {type, data, trace?} entry unless data is nil.
// All other falsy values (false, 0, "") are retained, matching the
// original library's "null/undefined only" drop rule.
func (n *Node) AddMetadata(typ string, data any, opts ...MetadataOptions) {
	if data == nil {
		return
	}
	var o MetadataOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	entry := MetadataEntry{Type: typ, Data: data}
	if o.StackTrace {
		trace := stacktrace.Capture()
		if len(trace) > 0 {
			// Drop AddMetadata's own frame so the caller is on top.
			trace = trace[1:]
		}
		entry.Trace = trace
	}
	n.metadata = append(n.metadata, entry)
}

// Metadata returns a copy of the node's metadata log, in append order.
func (n *Node) Metadata() []MetadataEntry {
	out := make([]MetadataEntry, len(n.metadata))
	copy(out, n.metadata)
	return out
}
