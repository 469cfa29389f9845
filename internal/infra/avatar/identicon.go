// Package avatar renders deterministic SVG identicons.
package avatar

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"planotes/internal/domain/service"
)

const (
	gridSize = 5
	cellSize = 20
)

type identiconService struct{}

// NewIdenticonService is the constructor for the identicon renderer.
func NewIdenticonService() service.AvatarService {
	return &identiconService{}
}

// Render produces a 5x5 horizontally mirrored identicon. The digest of the
// seed drives both the cell pattern and the foreground color, so a given seed
// always renders the same document.
func (s *identiconService) Render(seed string) []byte {
	digest := sha256.Sum256([]byte(seed))

	// Hue from the first two digest bytes, fixed saturation and lightness
	// keep the palette readable on light backgrounds.
	hue := (int(digest[0])<<8 | int(digest[1])) % 360
	color := fmt.Sprintf("hsl(%d, 55%%, 45%%)", hue)

	var builder strings.Builder
	fmt.Fprintf(&builder,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="100" height="100">`,
		gridSize*cellSize, gridSize*cellSize,
	)
	fmt.Fprintf(&builder, `<rect width="100%%" height="100%%" fill="#f0f0f0"/>`)

	// Only the left half plus the middle column comes from the digest; the
	// right half mirrors it.
	for row := range gridSize {
		for col := 0; col <= gridSize/2; col++ {
			bit := row*(gridSize/2+1) + col
			if digest[2+bit/8]&(1<<(bit%8)) == 0 {
				continue
			}

			fmt.Fprintf(&builder, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				col*cellSize, row*cellSize, cellSize, cellSize, color)

			if mirror := gridSize - 1 - col; mirror != col {
				fmt.Fprintf(&builder, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
					mirror*cellSize, row*cellSize, cellSize, cellSize, color)
			}
		}
	}

	builder.WriteString(`</svg>`)

	return []byte(builder.String())
}
