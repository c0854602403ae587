package catalog

import (
	"strings"
	"testing"
)

func TestValidate_DetectsCycle(t *testing.T) {
	c := New(
		[]WordItem{{ID: "w"}},
		nil,
		[]Module{
			{ID: "a", WordIDs: []string{"w"}, Requires: []string{"b"}},
			{ID: "b", WordIDs: []string{"w"}, Requires: []string{"a"}},
		},
	)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidate_DetectsDanglingReferences(t *testing.T) {
	c := New(
		[]WordItem{{ID: "w"}},
		[]LogicSequence{{ID: "s", Parts: []SequencePart{{WordID: "ghost", Order: 0}}}},
		[]Module{
			{ID: "a", WordIDs: []string{"w", "missing-word"}, SequenceIDs: []string{"missing-seq"}},
			{ID: "b", WordIDs: []string{"w"}, Requires: []string{"missing-mod"}},
		},
	)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for dangling references, got nil")
	}
	for _, want := range []string{"missing-word", "missing-seq", "missing-mod", "ghost"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestValidate_DetectsDuplicates(t *testing.T) {
	c := New(
		[]WordItem{{ID: "w"}, {ID: "w"}},
		[]LogicSequence{{ID: "s", Parts: []SequencePart{{WordID: "w", Order: 0}, {WordID: "w", Order: 0}}}},
		[]Module{{ID: "a", WordIDs: []string{"w"}}, {ID: "a", WordIDs: []string{"w"}}},
	)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for duplicates, got nil")
	}
	for _, want := range []string{`duplicate word ID: "w"`, `duplicate module ID: "a"`, "duplicate order 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestValidate_EmptyModule(t *testing.T) {
	c := New(nil, nil, []Module{{ID: "a"}})
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "has no words") {
		t.Errorf("expected empty module error, got: %v", err)
	}
}
