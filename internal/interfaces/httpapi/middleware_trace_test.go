package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":                       false,
		"/health":                        false,
		"/livez":                         false,
		"/readyz":                        false,
		" /healthz ":                     false,
		"/v1/sports":                     true,
		"/v1/sports/nrl/players/1/stats": true,
		"/v1/sports/afl/gamelogs":        true,
		"/":                              true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}
