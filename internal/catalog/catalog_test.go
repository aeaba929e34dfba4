package catalog

import "testing"

func TestLoadBuildsExpectedGroups(t *testing.T) {
	cat := MustLoad()
	if cat.Len() == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	if _, ok := cat.ByID("fs:protected-path-write"); !ok {
		t.Fatal("expected fs:protected-path-write in the catalog")
	}
}

func TestProtectedPathWritePredicateNeedsExistenceAndGlob(t *testing.T) {
	if _, ok := MustLoad().ByID("fs:protected-path-write"); !ok {
		t.Fatal("fs:protected-path-write not found")
	}

	cases := []struct {
		name     string
		path     string
		exists   bool
		expectOK bool
	}{
		{"protected and present", "~/.ssh/id_rsa", true, true},
		{"protected but absent", "~/.ssh/id_rsa", false, false},
		{"present but unprotected", "~/notes.txt", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exists := func(string) bool { return tc.exists }
			predicates := []Predicate{
				protectedPathPredicate("path", DefaultProtectedPaths),
				pathExistsPredicate("path", exists),
			}

			captures := map[string]string{"path": tc.path}
			pass := true
			for _, p := range predicates {
				if !p(captures) {
					pass = false
					break
				}
			}
			if pass != tc.expectOK {
				t.Errorf("path %q exists=%v: got pass=%v, want %v", tc.path, tc.exists, pass, tc.expectOK)
			}
		})
	}
}

func TestLoadWithExistsInjectsFakeFilesystem(t *testing.T) {
	calls := 0
	fake := func(path string) bool {
		calls++
		return true
	}

	cat, err := LoadWithExists(fake)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	check, ok := cat.ByID("fs:protected-path-write")
	if !ok {
		t.Fatal("fs:protected-path-write not found")
	}
	for _, p := range check.Predicates {
		p(map[string]string{"path": "~/.aws/credentials"})
	}
	if calls == 0 {
		t.Error("expected the injected Exists function to be invoked")
	}
}
