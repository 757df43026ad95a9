package blatt

import (
	"reflect"
	"testing"
)

func TestSplitCategories(t *testing.T) {
	tests := []struct {
		segment string
		want    []string
	}{
		{"emacs", []string{"emacs"}},
		{"emacs,lisp", []string{"emacs", "lisp"}},
		{" emacs , lisp ", []string{"emacs", "lisp"}},
		{"emacs,,lisp,", []string{"emacs", "lisp"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitCategories(tt.segment); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCategories(%q) = %v, want %v", tt.segment, got, tt.want)
		}
	}
}

func TestAllCategories(t *testing.T) {
	posts := []Post{
		{Category: "lisp"},
		{Category: "emacs"},
		{Category: "lisp"},
		{Category: "vim"},
	}
	want := []string{"emacs", "lisp", "vim"}
	if got := allCategories(posts); !reflect.DeepEqual(got, want) {
		t.Errorf("allCategories = %v, want %v", got, want)
	}
}
