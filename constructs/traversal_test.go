package constructs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pathMessage struct {
	path    string
	message string
}

// collectValidations mirrors how a caller is expected to drive
// validation: the core never recurses on its own, so traversal and
// aggregation both live here, in the caller, using FindAll(PostOrder).
func collectValidations(root *Node) ([]pathMessage, error) {
	var out []pathMessage
	for _, n := range root.FindAll(PostOrder) {
		errs, err := n.Validate()
		if err != nil {
			return nil, err
		}
		for _, msg := range errs {
			out = append(out, pathMessage{path: n.Path(), message: msg})
		}
	}
	return out, nil
}

func TestValidate_PostOrderAggregation(t *testing.T) {
	root := NewRoot()
	their, _ := NewConstruct(root, "TheirConstruct")
	your, _ := NewConstruct(their, "YourConstruct")
	my, _ := NewConstruct(root, "MyConstruct")

	my.Node().AddValidation(stringsValidator{errs: []string{"my-error1", "my-error2"}})
	your.Node().AddValidation(stringsValidator{errs: []string{"your-error1"}})
	their.Node().AddValidation(stringsValidator{errs: []string{"their-error"}})
	root.Node().AddValidation(stringsValidator{errs: []string{"stack-error"}})

	got, err := collectValidations(root.Node())
	if err != nil {
		t.Fatal(err)
	}

	want := []pathMessage{
		{path: "TheirConstruct/YourConstruct", message: "your-error1"},
		{path: "TheirConstruct", message: "their-error"},
		{path: "MyConstruct", message: "my-error1"},
		{path: "MyConstruct", message: "my-error2"},
		{path: "", message: "stack-error"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(pathMessage{})); diff != "" {
		t.Errorf("validation aggregation mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAll_PostOrderEndsWithRoot(t *testing.T) {
	root := NewRoot()
	_, _ = NewConstruct(root, "A")
	all := root.Node().FindAll(PostOrder)
	if len(all) == 0 || all[len(all)-1] != root.Node() {
		t.Fatalf("FindAll(PostOrder) last element = %v, want root", all[len(all)-1])
	}
}
