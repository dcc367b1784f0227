package resolver

import "testing"

func testRoots() map[string]struct{} {
	return map[string]struct{}{
		"lazlle.studio":     {},
		"www.lazlle.studio": {},
		"localhost":         {},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		path        string
		wantRewrite bool
		wantPath    string
	}{
		{"apex", "lazlle.studio", "/", false, ""},
		{"apex with port", "lazlle.studio:3000", "/", false, ""},
		{"apex with www", "www.lazlle.studio", "/anything", false, ""},
		{"www with port", "www.lazlle.studio:443", "/", false, ""},
		{"localhost", "localhost", "/", false, ""},
		{"localhost with port", "localhost:8080", "/admin", false, ""},
		{"loopback ip", "127.0.0.1:8080", "/", false, ""},
		{"empty host", "", "/", false, ""},
		{"tenant root path", "acme.lazlle.studio", "/", true, "/acme"},
		{"tenant sub path", "acme.lazlle.studio", "/menu", true, "/acme/menu"},
		{"tenant with port", "acme.lazlle.studio:443", "/", true, "/acme"},
		{"uppercase host", "ACME.LAZLLE.STUDIO", "/", true, "/acme"},
		{"two label unknown host", "example.com", "/", false, ""},
		{"www slug is not a tenant", "www.other.example", "/", false, ""},
		{"preview host", "acme-menubuilder.vercel.app", "/", true, "/acme"},
		{"preview host sub path", "acme-menubuilder.vercel.app", "/menu", true, "/acme/menu"},
		{"preview host without hyphen", "menubuilder.vercel.app", "/", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.host, tt.path, testRoots(), "vercel.app")
			if d.Rewrite != tt.wantRewrite {
				t.Fatalf("Resolve(%q, %q).Rewrite = %v, want %v", tt.host, tt.path, d.Rewrite, tt.wantRewrite)
			}
			if d.Path != tt.wantPath {
				t.Errorf("Resolve(%q, %q).Path = %q, want %q", tt.host, tt.path, d.Path, tt.wantPath)
			}
		})
	}
}

func TestResolveWithoutPreviewSuffix(t *testing.T) {
	// With no preview suffix configured, a preview-style host falls back to
	// the generic >=3 label rule and the whole first label becomes the slug.
	d := Resolve("acme-menubuilder.vercel.app", "/", testRoots(), "")
	if !d.Rewrite || d.Path != "/acme-menubuilder" {
		t.Errorf("got %+v, want rewrite to /acme-menubuilder", d)
	}
}

func TestResolveNeverDuplicatesSlash(t *testing.T) {
	d := Resolve("acme.lazlle.studio", "/", testRoots(), "")
	if d.Path != "/acme" {
		t.Errorf("root path rewrite = %q, want %q", d.Path, "/acme")
	}
}
