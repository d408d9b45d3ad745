package version

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		commit    string
		buildTime string
		settings  map[string]string
		want      string
	}{
		{
			name:      "ldflags win",
			commit:    "0123456789abcdef",
			buildTime: "2026-10-19T09:00:00Z",
			settings:  map[string]string{"vcs.revision": "fedcba9876543210"},
			want:      "hotelres dev (commit: 0123456, built: 2026-10-19T09:00:00Z)",
		},
		{
			name:     "embedded vcs stamp",
			settings: map[string]string{"vcs.revision": "fedcba9876543210", "vcs.time": "2026-10-18T12:00:00Z"},
			want:     "hotelres dev (commit: fedcba9, built: 2026-10-18T12:00:00Z)",
		},
		{
			name:     "dirty tree",
			settings: map[string]string{"vcs.revision": "fedcba9876543210", "vcs.modified": "true"},
			want:     "hotelres dev (commit: fedcba9+dirty, built: unknown)",
		},
		{
			name:     "nothing known",
			settings: map[string]string{},
			want:     "hotelres dev (commit: unknown, built: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.commit, tt.buildTime, tt.settings).String()
			if got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
