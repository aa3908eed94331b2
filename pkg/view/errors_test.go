package view_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
)

func TestErrorsNormaliseMessages(t *testing.T) {
	errs := view.NewErrors(" Required ", "", "Required", "Too short")
	if diff := cmp.Diff([]string{"Required", "Too short"}, errs.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	errs.AddClass("help-block")
	got, err := element.RenderString(errs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<p class="help-block">Required<br/>Too short</p>`; got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestErrorsRenderNothingWhenEmpty(t *testing.T) {
	errs := view.NewErrors(" ")
	errs.AddClass("help-block")
	got, err := element.RenderString(errs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
