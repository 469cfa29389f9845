package service

// AvatarService renders a deterministic avatar image for a seed string: the
// same seed always yields the same bytes.
type AvatarService interface {
	// Render returns an SVG document for the seed.
	Render(seed string) []byte
}
