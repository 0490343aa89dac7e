package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ada Lovelace", "Ada Lovelace"},
		{"  Ada   Lovelace  ", "Ada Lovelace"},
		{"", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Published", "published"},
		{"  ON-HOLD ", "on-hold"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Status(tt.input); got != tt.want {
			t.Errorf("Status(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if Role(" Admin ") != "admin" {
		t.Error("Role should lowercase and trim")
	}
}

func TestList(t *testing.T) {
	got := List([]string{" ai ", "", "  ", "robotics"})
	if !reflect.DeepEqual(got, []string{"ai", "robotics"}) {
		t.Errorf("List = %#v", got)
	}
	if got := List(nil); got == nil || len(got) != 0 {
		t.Errorf("List(nil) = %#v, want empty non-nil", got)
	}
}
