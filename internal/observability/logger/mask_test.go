package logger

import (
	"net/http"
	"testing"
)

func TestMaskAPIKey(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "long key keeps last 4", input: "$aact_prod_000abcd1234", want: "****1234"},
		{name: "short key", input: "abc", want: "****abc"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskAPIKey(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMaskAuthorizationPreservesScheme(t *testing.T) {
	if got := MaskAuthorization("Bearer sk_live_abcdef9876"); got != "Bearer ****9876" {
		t.Fatalf("unexpected masked value %q", got)
	}
	if got := MaskAuthorization("raw-token-5555"); got != "****5555" {
		t.Fatalf("unexpected masked value %q", got)
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Access_token", "asaas-key-0042")

	masked := MaskHeaders(headers)
	if masked["Content-Type"] != "application/json" {
		t.Fatalf("content type should pass through, got %q", masked["Content-Type"])
	}
	if masked["Access_token"] != "****0042" {
		t.Fatalf("access token should be masked, got %q", masked["Access_token"])
	}
}
