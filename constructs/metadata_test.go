package constructs

import (
	"strings"
	"testing"
)

func TestAddMetadata_DropsNullAndUndefinedOnly(t *testing.T) {
	root := NewRoot()

	root.Node().AddMetadata("Null", nil)
	var typedNilErr error
	root.Node().AddMetadata("TypedNilError", typedNilErr)
	root.Node().AddMetadata("False", false)
	root.Node().AddMetadata("Empty", "")
	root.Node().AddMetadata("True", true)
	root.Node().AddMetadata("Zero", 0)

	entries := root.Node().Metadata()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4 (false, empty, true, zero): %+v", len(entries), entries)
	}

	wantTypes := []string{"False", "Empty", "True", "Zero"}
	for i, want := range wantTypes {
		if entries[i].Type != want {
			t.Errorf("entries[%d].Type = %q, want %q", i, entries[i].Type, want)
		}
	}
}

func TestAddMetadata_StackTraceCapturesCaller(t *testing.T) {
	root := NewRoot()
	root.Node().AddMetadata("Marker", "payload", MetadataOptions{StackTrace: true})

	entries := root.Node().Metadata()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(entries[0].Trace) == 0 {
		t.Fatal("Trace is empty, want at least the calling test frame")
	}

	found := false
	for _, frame := range entries[0].Trace {
		if strings.Contains(frame, "TestAddMetadata_StackTraceCapturesCaller") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Trace = %v, want a frame naming the calling test function", entries[0].Trace)
	}
}
