package pathutil

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"", "."},
		{".", "."},
		{"./", "."},
		{"a", "a"},
		{"./a", "a"},
		{"a/", "a"},
		{"a/./b", "a/b"},
		{"a//b", "a/b"},
		{"a/b/..", "a"},
		{"a/b/../c", "a/c"},
		{"..", ".."},
		{"../..", "../.."},
		{"../a", "../a"},
		{"a/../..", ".."},
		{"/", "/"},
		{"/a", "/a"},
		{"/a/..", "/"},
		{"/..", "/"},
		{"/../a", "/a"},
		{"/a/b/../../c", "/c"},
	}

	for _, testCase := range testCases {
		if result := Normalize(testCase.path); result != testCase.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", testCase.path, result, testCase.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	paths := []string{
		"", ".", "a/b/c", "../a/b", "/a/../b/c", "a/../../b", "/",
	}

	for _, p := range paths {
		once := Normalize(p)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", p, once, twice)
		}
	}
}

func TestNormalizeDotPrefixAndTrailingSlash(t *testing.T) {
	paths := []string{"a", "a/b", "a/b/c"}

	for _, p := range paths {
		if got := Normalize("./" + p); got != Normalize(p) {
			t.Errorf("Normalize(./%s) = %q, expected %q", p, got, Normalize(p))
		}
		if got := Normalize(p + "/"); got != Normalize(p) {
			t.Errorf("Normalize(%s/) = %q, expected %q", p, got, Normalize(p))
		}
	}
}

func TestNormalizeNFC(t *testing.T) {
	// Decomposed "é" (e + combining acute accent) should normalize to its
	// composed form.
	decomposed := "café"
	composed := "caf\u00e9"

	if result := NormalizeNFC(decomposed); result != composed {
		t.Errorf("NormalizeNFC(%q) = %q, expected %q", decomposed, result, composed)
	}
}
