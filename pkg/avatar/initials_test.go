package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInitialsSVG(t *testing.T) {
	t.Run("takes up to three initials, uppercased", func(t *testing.T) {
		svg := GenerateInitialsSVG("anna maria smith watson", 128)
		assert.Contains(t, svg, ">AMS</text>")
	})

	t.Run("deterministic for the same name", func(t *testing.T) {
		assert.Equal(t, GenerateInitialsSVG("Ivan Petrov", 128), GenerateInitialsSVG("Ivan Petrov", 128))
	})

	t.Run("different names get different colors", func(t *testing.T) {
		assert.NotEqual(t, GenerateInitialsSVG("Ivan Petrov", 128), GenerateInitialsSVG("Petr Ivanov", 128))
	})

	t.Run("blank name falls back to a question mark", func(t *testing.T) {
		svg := GenerateInitialsSVG("   ", 64)
		assert.Contains(t, svg, ">?</text>")
	})

	t.Run("escapes markup-significant initials", func(t *testing.T) {
		svg := GenerateInitialsSVG("<script>", 64)
		assert.NotContains(t, svg, "><</text>")
	})

	t.Run("non-positive size uses the default", func(t *testing.T) {
		svg := GenerateInitialsSVG("Ivan", 0)
		assert.Contains(t, svg, `width="128"`)
	})
}
