package posts

import "strings"

// CreatePostInput is the client payload for creating a post. Author is
// never accepted from the payload; it always comes from the verified
// identity, so an authorId-like field in the body is simply ignored.
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostInput is the client payload for updating a post. Nil fields
// leave the stored value unchanged.
type UpdatePostInput struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (in CreatePostInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "must be a non-empty string")
	}
	if strings.TrimSpace(in.Content) == "" {
		return NewValidationError("content", "must be a non-empty string")
	}
	return nil
}

func (in UpdatePostInput) Validate() error {
	if strings.TrimSpace(in.ID) == "" {
		return NewValidationError("id", "must be a non-empty string")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return NewValidationError("title", "must be a non-empty string when present")
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		return NewValidationError("content", "must be a non-empty string when present")
	}
	return nil
}
