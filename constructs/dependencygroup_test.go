package constructs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDependencyGroup_FlattensNestedGroups(t *testing.T) {
	root := NewRoot()
	a, _ := NewConstruct(root, "A")
	b, _ := NewConstruct(root, "B")
	c, _ := NewConstruct(root, "C")

	inner := NewDependencyGroup(b, c)
	outer := NewDependencyGroup(a, inner, a) // a repeated, must dedupe

	roots, err := outer.DependencyRoots()
	if err != nil {
		t.Fatal(err)
	}
	want := []*Node{a.Node(), b.Node(), c.Node()}
	if diff := cmp.Diff(want, roots, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("DependencyRoots() mismatch (-want +got):\n%s", diff)
	}
}

func TestDependencyGroup_MembersAddedAfterAttachAreObserved(t *testing.T) {
	root := NewRoot()
	a, _ := NewConstruct(root, "A")
	b, _ := NewConstruct(root, "B")
	consumer, _ := NewConstruct(root, "Consumer")

	group := NewDependencyGroup(a)
	if err := consumer.Node().AddDependency(group); err != nil {
		t.Fatal(err)
	}

	// Attach happened above; mutate the group afterwards.
	group.Add(b)

	deps, err := consumer.Node().Dependencies()
	if err != nil {
		t.Fatal(err)
	}
	want := []*Node{a.Node(), b.Node()}
	if diff := cmp.Diff(want, deps, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("Dependencies() mismatch after late Add (-want +got):\n%s", diff)
	}
}
