// internal/core/domain/candidate_test.go
package domain

import (
	"path/filepath"
	"testing"
)

func TestCandidateFile_Stem(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{filepath.Join("cache", "img", "abc123.ndf"), "abc123"},
		{filepath.Join("cache", "abc123.NDF"), "abc123"},
		{"wallpaper.ndf_tmp", "wallpaper"},
		{"noextension", "noextension"},
		{"double.ndf.ndf", "double.ndf"},
	}

	for _, tc := range cases {
		got := CandidateFile{Path: tc.path}.Stem()
		if got != tc.want {
			t.Errorf("Stem(%q): got %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestIsCacheName(t *testing.T) {
	cases := []struct {
		name        string
		includeTemp bool
		want        bool
	}{
		{"a.ndf", false, true},
		{"a.NDF", false, true},
		{"a.Ndf", false, true},
		{"a.ndf_tmp", false, false},
		{"a.ndf_tmp", true, true},
		{"a.NDF_TMP", true, true},
		{"a.png", false, false},
		{"a.ndfx", false, false},
		{"andf", false, false},
	}

	for _, tc := range cases {
		got := IsCacheName(tc.name, tc.includeTemp)
		if got != tc.want {
			t.Errorf("IsCacheName(%q, %v): got %v, want %v", tc.name, tc.includeTemp, got, tc.want)
		}
	}
}
