package label

import "testing"

func TestManifest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantErr  bool
	}{
		{"empty", Manifest{}, false},
		{
			"valid",
			Manifest{
				Labels: []Label{
					{Name: "bug", Color: "d73a4a"},
					{Name: "feature", Aliases: []string{"enhancement"}},
				},
				Ignore: []string{"dependabot*"},
				Delete: []string{"stale"},
			},
			false,
		},
		{
			"duplicate names",
			Manifest{Labels: []Label{{Name: "bug"}, {Name: "bug"}}},
			true,
		},
		{
			"alias shadows desired label",
			Manifest{Labels: []Label{{Name: "bug"}, {Name: "feature", Aliases: []string{"bug"}}}},
			true,
		},
		{
			"invalid label propagates",
			Manifest{Labels: []Label{{Name: "bug", Color: "nope"}}},
			true,
		},
		{
			"bad ignore pattern",
			Manifest{Ignore: []string{"p[0"}},
			true,
		},
		{
			"empty delete entry",
			Manifest{Delete: []string{" "}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
