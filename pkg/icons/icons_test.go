package icons

import (
	"strings"
	"testing"
)

func TestGeneratorDefaultTemplate(t *testing.T) {
	gen := NewGenerator("")
	if got := gen.Markup("user"); got != `<span class="glyphicon glyphicon-user"></span>` {
		t.Fatalf("unexpected markup %q", got)
	}
	if got := gen.Markup("  "); got != "" {
		t.Fatalf("blank names should produce no markup, got %q", got)
	}
}

func TestGeneratorCustomTemplate(t *testing.T) {
	gen := NewGenerator(`<i class="fa fa-%s" aria-hidden="true"></i>`)
	if got := string(gen.Generate("envelope")); got != `<i class="fa fa-envelope" aria-hidden="true"></i>` {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestSanitizeRemovesScripts(t *testing.T) {
	gen := NewGenerator("")
	got := gen.Markup(`x"><script>alert(1)</script><span class="`)
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Fatalf("expected script to be stripped, got %q", got)
	}

	svg := Sanitize(`<svg viewBox="0 0 24 24" onload="x()"><path d="M0 0h24v24H0z"/></svg>`)
	if strings.Contains(svg, "onload") || !strings.Contains(svg, "<path") {
		t.Fatalf("unexpected svg sanitising result %q", svg)
	}
}
