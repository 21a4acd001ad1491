package app

import "testing"

func TestFormatURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty uses placeholder",
			in:   "",
			want: "example.com › ...",
		},
		{
			name: "https with www and path",
			in:   "https://www.example.com/blog/post",
			want: "example.com › blog › post",
		},
		{
			name: "http scheme stripped",
			in:   "http://example.com/page",
			want: "example.com › page",
		},
		{
			name: "bare domain",
			in:   "example.com",
			want: "example.com",
		},
		{
			name: "trailing slash ignored",
			in:   "https://example.com/docs/",
			want: "example.com › docs",
		},
		{
			name: "empty path segments collapsed",
			in:   "example.com/a//b",
			want: "example.com › a › b",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatURL(tc.in); got != tc.want {
				t.Fatalf("FormatURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
