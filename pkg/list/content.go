package list

import (
	"fmt"

	"github.com/ray-d-song/golist/pkg/utils"
)

// Content is the text payload carried by a node
type Content struct {
	text     string
	released bool
	owned    bool // held by a node
}

// NewContent makes a content holding a copy of text
func NewContent(text string) (*Content, error) {
	if text == "" {
		utils.DebugLog("content: text is empty")
		return nil, fmt.Errorf("content text is empty: %w", ErrInvalidArgument)
	}
	return &Content{text: text}, nil
}

// MustContent is like NewContent but panics on error
func MustContent(text string) *Content {
	c, err := NewContent(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Text returns the text, or "" once released
func (c *Content) Text() string {
	if c == nil {
		return ""
	}
	return c.text
}

// Released reports whether the content has been released
func (c *Content) Released() bool {
	return c != nil && c.released
}

// Release drops the text. Releasing twice, or a nil content, only logs.
func (c *Content) Release() {
	if c == nil {
		utils.DebugLog("content: release of nil content")
		return
	}
	if c.released {
		utils.DebugLog("content: %p already released", c)
		return
	}
	c.text = ""
	c.released = true
}

func (c *Content) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.released {
		return "<released>"
	}
	return c.text
}

// ContentEquals compares two contents by text. Missing or released contents never match.
func ContentEquals(a, b *Content) bool {
	if a == nil || b == nil || a.released || b.released {
		return false
	}
	return a.text == b.text
}
