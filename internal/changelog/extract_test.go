package changelog

import (
	"strings"
	"testing"
)

func TestExtract_Markdown(t *testing.T) {
	body := "## New Features\n- Feature A (#1)\n- Feature B (#2,#3)\n\n## Bug Fixes\n- Fix X"

	p := Extract(body)

	if len(p.Features) != 2 {
		t.Fatalf("expected 2 features, got %d: %v", len(p.Features), p.Features)
	}
	if p.Features[0] != "Feature A" || p.Features[1] != "Feature B" {
		t.Errorf("unexpected features: %v", p.Features)
	}
	if len(p.BugFixes) != 1 || p.BugFixes[0] != "Fix X" {
		t.Errorf("unexpected bug fixes: %v", p.BugFixes)
	}
	if !strings.Contains(p.Raw, "## New Features") {
		t.Errorf("expected raw capture to contain the heading, got %q", p.Raw)
	}
	if strings.Contains(p.Raw, "Bug Fixes") {
		t.Errorf("raw capture spans past the sibling heading: %q", p.Raw)
	}
}

func TestExtract_MarkdownAllSections(t *testing.T) {
	body := `## New Features
* Streamed responses
* Session resume (#100)

## Bug Fixes
- Fix crash on resize (#101)
- Fix prompt flicker

## Documentation
- Document sandbox modes

## Chores
- Bump dependencies (#102, #103)`

	p := Extract(body)

	if len(p.Features) != 2 {
		t.Errorf("expected 2 features, got %v", p.Features)
	}
	if len(p.BugFixes) != 2 {
		t.Errorf("expected 2 bug fixes, got %v", p.BugFixes)
	}
	if len(p.Docs) != 1 || p.Docs[0] != "Document sandbox modes" {
		t.Errorf("unexpected docs: %v", p.Docs)
	}
	if len(p.Chores) != 1 || p.Chores[0] != "Bump dependencies" {
		t.Errorf("unexpected chores: %v", p.Chores)
	}
}

func TestExtract_HTML(t *testing.T) {
	body := `<h2>New Features</h2>
<ul>
<li>Feature A (#1)</li>
<li>Add <code>--json</code> flag (#2, #3)</li>
</ul>
<h2>Bug Fixes</h2>
<ul>
<li>Fix X</li>
</ul>`

	p := Extract(body)

	if len(p.Features) != 2 {
		t.Fatalf("expected 2 features, got %v", p.Features)
	}
	if p.Features[0] != "Feature A" {
		t.Errorf("unexpected first feature: %q", p.Features[0])
	}
	if p.Features[1] != "Add --json flag" {
		t.Errorf("expected inline markup stripped, got %q", p.Features[1])
	}
	if len(p.BugFixes) != 1 || p.BugFixes[0] != "Fix X" {
		t.Errorf("unexpected bug fixes: %v", p.BugFixes)
	}
	if !strings.Contains(p.Raw, "New Features") {
		t.Errorf("expected raw capture to contain heading text, got %q", p.Raw)
	}
}

func TestExtract_HTMLEntitiesDecodedOnce(t *testing.T) {
	body := `<h2>New Features</h2><ul><li>Compare with a &lt;= b</li></ul>`

	p := Extract(body)

	if len(p.Features) != 1 {
		t.Fatalf("expected 1 feature, got %v", p.Features)
	}
	if p.Features[0] != "Compare with a <= b" {
		t.Errorf("expected tokenizer-decoded entity, got %q", p.Features[0])
	}
}

func TestExtract_HTMLFirstPolicy(t *testing.T) {
	// An HTML body whose text happens to contain markdown-looking lines
	// must be handled by the HTML pass alone.
	body := `<h2>New Features</h2><ul><li>Real feature</li></ul>
<p>## New Features</p>`

	p := Extract(body)

	if len(p.Features) != 1 || p.Features[0] != "Real feature" {
		t.Errorf("expected HTML pass to win, got %v", p.Features)
	}
}

func TestExtract_MarkdownFallback(t *testing.T) {
	// No <h2>/<li> markup anywhere, so the HTML pass yields nothing and
	// the markdown pass must take over.
	body := "Intro paragraph.\n\n## New Features\n- Only feature"

	p := Extract(body)

	if len(p.Features) != 1 || p.Features[0] != "Only feature" {
		t.Errorf("expected markdown fallback to extract the feature, got %v", p.Features)
	}
}

func TestExtract_SectionBoundary(t *testing.T) {
	body := `## New Features
- In section

## Something Else
- Not a feature

## Bug Fixes
- A fix`

	p := Extract(body)

	if len(p.Features) != 1 || p.Features[0] != "In section" {
		t.Errorf("section leaked past its boundary: %v", p.Features)
	}
	if len(p.BugFixes) != 1 {
		t.Errorf("expected later section still collected: %v", p.BugFixes)
	}
}

func TestExtract_DeeperHeadingsDoNotTerminate(t *testing.T) {
	body := "## New Features\n- First\n### Details\n- Second\n\n## Bug Fixes\n- Fix"

	p := Extract(body)

	if len(p.Features) != 2 {
		t.Errorf("expected ### heading not to end the section, got %v", p.Features)
	}
}

func TestExtract_EmptyBody(t *testing.T) {
	p := Extract("")

	if !p.Empty() {
		t.Errorf("expected empty result, got %+v", p)
	}
	if p.Raw != "" {
		t.Errorf("expected empty raw capture, got %q", p.Raw)
	}
}

func TestExtract_NoPrimarySection(t *testing.T) {
	// Secondary headings without the primary one resolve to a fully empty
	// result, not a partial one.
	body := "## Bug Fixes\n- Fix X\n\n## Chores\n- Tidy up"

	p := Extract(body)

	if !p.Empty() {
		t.Errorf("expected empty result without a primary section, got %+v", p)
	}
}

func TestExtract_CaseSensitiveHeadings(t *testing.T) {
	body := "## new features\n- lower case heading"

	if p := Extract(body); !p.Empty() {
		t.Errorf("heading match must be case-sensitive, got %+v", p)
	}
}

func TestExtract_BlankItemsDropped(t *testing.T) {
	body := "## New Features\n- Feature A\n- (#99)\n-   "

	p := Extract(body)

	if len(p.Features) != 1 || p.Features[0] != "Feature A" {
		t.Errorf("expected blank-after-cleaning items dropped, got %v", p.Features)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	body := "## New Features\n- Feature A (#1)\n\n## Bug Fixes\n- Fix X"

	first := Extract(body)
	second := Extract(body)

	if strings.Join(first.Features, "|") != strings.Join(second.Features, "|") ||
		first.Raw != second.Raw {
		t.Error("Extract must be deterministic for identical input")
	}
}
