package resume

import "testing"

func TestFindProjectByID(t *testing.T) {
	p := FindProject("2")
	if p == nil {
		t.Fatal("FindProject(\"2\") returned nil")
	}
	if p.Slug != "lms-saas" {
		t.Errorf("wrong project: got %q", p.Slug)
	}
}

func TestFindProjectBySlug(t *testing.T) {
	p := FindProject("rag-engine")
	if p == nil {
		t.Fatal("FindProject(\"rag-engine\") returned nil")
	}
	if p.ID != 3 {
		t.Errorf("wrong project id: got %d", p.ID)
	}
}

func TestFindProjectByTitlePrefix(t *testing.T) {
	p := FindProject("ai voice")
	if p == nil {
		t.Fatal("title-prefix lookup returned nil")
	}
	if p.Slug != "voice-interview" {
		t.Errorf("wrong project: got %q", p.Slug)
	}
}

func TestFindProjectMissing(t *testing.T) {
	for _, tok := range []string{"7", "does-not-exist", "", "   "} {
		if p := FindProject(tok); p != nil {
			t.Errorf("FindProject(%q) = %v, want nil", tok, p)
		}
	}
}

func TestCatalogSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Projects {
		if seen[p.Slug] {
			t.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
	}
}
