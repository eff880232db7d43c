package fonts

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		list string
		want string
	}{
		{"Go", "Go"},
		{"'Go Mono', monospace", "Go Mono"},
		{`Lato, "go mono"`, "Go Mono"},
		{"Lato, sans-serif", DefaultFamily},
		{"", DefaultFamily},
	}

	for _, tt := range tests {
		t.Run(tt.list, func(t *testing.T) {
			f := Resolve(tt.list)
			if f.Name != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.list, f.Name, tt.want)
			}
			if len(f.Regular) == 0 || len(f.Bold) == 0 {
				t.Errorf("Resolve(%q) returned empty font data", tt.list)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("Lato"); ok {
		t.Error("Lookup(Lato) should miss")
	}
	if f, ok := Lookup("  GO "); !ok || f.Name != "Go" {
		t.Errorf("Lookup should ignore case and space, got %q, %v", f.Name, ok)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "Go" || names[1] != "Go Mono" {
		t.Errorf("Names() = %v", names)
	}
}
