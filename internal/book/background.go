package book

import "encoding/json"

// Default background placement values.
const (
	DefaultBackgroundSize     = "cover"
	DefaultBackgroundPosition = "center"
)

// Background describes how an image is placed behind a page, in CSS
// background terms.
type Background struct {
	Image    string `json:"image"`
	Size     string `json:"size"`
	Position string `json:"position"`
}

// Backgrounds configures the cover background plus either one shared
// background for all comment pages or a per-page list.
type Backgrounds struct {
	Cover *Background `json:"cover,omitempty"`
	Pages *Background `json:"pages,omitempty"`
	// PagesList overrides Pages per comment page by index.
	PagesList []Background `json:"pages_list,omitempty"`
}

// UnmarshalJSON accepts either a bare image path string or a full
// background object.
func (b *Background) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Background{Image: s}
		return nil
	}

	type background Background
	var obj background
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*b = Background(obj)
	return nil
}

// withDefaults returns a copy with empty size/position filled in.
func (b *Background) withDefaults() *Background {
	out := *b
	if out.Size == "" {
		out.Size = DefaultBackgroundSize
	}
	if out.Position == "" {
		out.Position = DefaultBackgroundPosition
	}
	return &out
}
