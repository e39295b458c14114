package storage

import "testing"

func TestBucketName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"ens-42", "ens-42"},
		{"ENS_42", "ENS_42"},
		{"acme holdings ag", "acme-holdings-ag"},
		{"a/b\\c:d", "a-b-c-d"},
		{"--trimmed--", "trimmed"},
		{"***", "reports"},
		{"", "reports"},
	}
	for _, tt := range tests {
		if got := BucketName(tt.in); got != tt.want {
			t.Errorf("BucketName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
