package themes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKnownTemplates(t *testing.T) {
	for _, id := range []string{"classic", "modern", "minimal"} {
		d := Get(id)
		assert.Equal(t, id, d.TemplateID)
		assert.NotEmpty(t, d.CSSTemplate)
		assert.True(t, Known(id))
	}
}

func TestGetFallsBackToClassic(t *testing.T) {
	d := Get("boyle-bir-tema-yok")
	assert.Equal(t, "classic", d.TemplateID)
	assert.False(t, Known("boyle-bir-tema-yok"))
}

func TestHeaderShapes(t *testing.T) {
	assert.Equal(t, "wave", Get("classic").HeaderShape)
	assert.Equal(t, "sharp", Get("modern").HeaderShape)
	assert.Equal(t, "round", Get("minimal").HeaderShape)
}

func TestBuildCSSAccentSubstitution(t *testing.T) {
	css := BuildCSS(Get("classic"), "#ff8800")
	assert.Contains(t, css, "#ff8800")
	assert.NotContains(t, css, accentPlaceholder)
}

func TestBuildCSSDefaultAccent(t *testing.T) {
	css := BuildCSS(Get("modern"), "")
	assert.Contains(t, css, DefaultAccent)
	assert.NotContains(t, css, accentPlaceholder)
}

func TestCSSTemplatesCarryPlaceholder(t *testing.T) {
	for _, id := range []string{"classic", "modern", "minimal"} {
		assert.True(t, strings.Contains(Get(id).CSSTemplate, accentPlaceholder),
			"%s şablonunda accent placeholder yok", id)
	}
}
