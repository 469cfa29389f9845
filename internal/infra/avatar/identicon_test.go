package avatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdenticonService_Render(t *testing.T) {
	t.Parallel()

	svc := NewIdenticonService()

	t.Run("deterministic for a seed", func(t *testing.T) {
		t.Parallel()

		first := svc.Render("alice")
		second := svc.Render("alice")
		assert.Equal(t, first, second)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, svc.Render("alice"), svc.Render("bob"))
	})

	t.Run("valid svg envelope", func(t *testing.T) {
		t.Parallel()

		doc := string(svc.Render("alice"))
		assert.True(t, strings.HasPrefix(doc, "<svg"))
		assert.True(t, strings.HasSuffix(doc, "</svg>"))
		assert.Contains(t, doc, `xmlns="http://www.w3.org/2000/svg"`)
	})
}
