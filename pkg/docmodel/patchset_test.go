package docmodel

import (
	"reflect"
	"strings"
	"testing"
)

func TestPatchSetSetReplaces(t *testing.T) {
	t.Parallel()

	p := PatchSet{}
	p.Set("title", Text{Value: "old"})
	p.Set("title", Text{Value: "new"})
	if len(p["title"]) != 1 {
		t.Fatalf("slot has %d nodes, want 1", len(p["title"]))
	}
	if p["title"][0].(Text).Value != "new" {
		t.Error("Set did not replace previous content")
	}
}

func TestPatchSetSlotsSorted(t *testing.T) {
	t.Parallel()

	p := PatchSet{}
	p.Set("c")
	p.Set("a")
	p.Set("b")
	if got := p.Slots(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Slots() = %v", got)
	}
}

func TestPatchSetDiff(t *testing.T) {
	t.Parallel()

	p := PatchSet{}
	p.Set("title")
	p.Set("rogue")

	missing, extra := p.Diff([]string{"title", "created_date"})
	if !reflect.DeepEqual(missing, []string{"created_date"}) {
		t.Errorf("missing = %v", missing)
	}
	if !reflect.DeepEqual(extra, []string{"rogue"}) {
		t.Errorf("extra = %v", extra)
	}
}

func TestPatchSetValidate(t *testing.T) {
	t.Parallel()

	p := PatchSet{}
	p.Set("title")
	if err := p.Validate([]string{"title"}); err != nil {
		t.Fatalf("exact match rejected: %v", err)
	}

	err := p.Validate([]string{"title", "created_date"})
	if err == nil {
		t.Fatal("missing slot accepted")
	}
	if !strings.Contains(err.Error(), "created_date") {
		t.Errorf("error does not name the missing slot: %v", err)
	}
}
