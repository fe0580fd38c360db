package list

import (
	"errors"
	"testing"
)

func TestNewContent(t *testing.T) {
	tests := []struct {
		text    string
		wantErr error
	}{
		{text: "*** Node 1.0 ***"},
		{text: " "},
		{text: "ünïcödé"},
		{text: "", wantErr: ErrInvalidArgument},
	}

	for _, test := range tests {
		c, err := NewContent(test.text)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("NewContent(%q) error = %v, expected %v", test.text, err, test.wantErr)
			continue
		}
		if err == nil && c.Text() != test.text {
			t.Errorf("NewContent(%q).Text() = %q, expected %q", test.text, c.Text(), test.text)
		}
	}
}

func TestContentEquals(t *testing.T) {
	released := MustContent("A")
	released.Release()

	tests := []struct {
		name     string
		a, b     *Content
		expected bool
	}{
		{"same text", MustContent("A"), MustContent("A"), true},
		{"different text", MustContent("A"), MustContent("B"), false},
		{"case matters", MustContent("a"), MustContent("A"), false},
		{"nil left", nil, MustContent("A"), false},
		{"nil right", MustContent("A"), nil, false},
		{"both nil", nil, nil, false},
		{"released", released, MustContent("A"), false},
	}

	for _, test := range tests {
		if got := ContentEquals(test.a, test.b); got != test.expected {
			t.Errorf("%s: ContentEquals(%v, %v) = %v, expected %v", test.name, test.a, test.b, got, test.expected)
		}
	}
}

func TestContentEqualsIsNotIdentity(t *testing.T) {
	c := MustContent("A")
	if !ContentEquals(c, c) {
		t.Errorf("ContentEquals(c, c) = false, expected true")
	}
	if !ContentEquals(c, MustContent("A")) {
		t.Errorf("ContentEquals with a separate copy = false, expected true")
	}
}

func TestContentRelease(t *testing.T) {
	c := MustContent("A")
	c.Release()
	if !c.Released() {
		t.Fatalf("Released() = false after Release")
	}
	if c.Text() != "" {
		t.Errorf("Text() after Release = %q, expected empty", c.Text())
	}

	// a second release and a nil release are harmless
	c.Release()
	var nilContent *Content
	nilContent.Release()
	if nilContent.Released() {
		t.Errorf("nil content reports released")
	}
}
