package cardpage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContentHashStableAcrossMetadata(t *testing.T) {
	a := sampleCard()
	b := sampleCard()

	// ID ve zaman damgaları içerik sayılmaz.
	b.ID = 42
	b.CreatedAt = time.Now().Add(-time.Hour)
	b.UpdatedAt = time.Now()
	for i := range b.Services {
		b.Services[i].ID = uint(100 + i)
	}

	assert.Equal(t, ContentHash(a), ContentHash(b))
}

func TestContentHashChangesWithContent(t *testing.T) {
	a := sampleCard()

	b := sampleCard()
	b.Bio = "Başka biyografi"
	assert.NotEqual(t, ContentHash(a), ContentHash(b))

	c := sampleCard()
	c.Services[0].Price = 9999
	assert.NotEqual(t, ContentHash(a), ContentHash(c))

	d := sampleCard()
	d.TemplateID = "modern"
	assert.NotEqual(t, ContentHash(a), ContentHash(d))
}

func TestContentHashChildOrderMatters(t *testing.T) {
	a := sampleCard()
	b := sampleCard()
	b.Services[0], b.Services[1] = b.Services[1], b.Services[0]

	assert.NotEqual(t, ContentHash(a), ContentHash(b))
}

func TestContentHashFieldBoundaries(t *testing.T) {
	// Alan ayracı olmadan "ab"+"c" ile "a"+"bc" aynı özete düşerdi.
	a := sampleCard()
	a.JobTitle = "ab"
	a.Company = "c"

	b := sampleCard()
	b.JobTitle = "a"
	b.Company = "bc"

	assert.NotEqual(t, ContentHash(a), ContentHash(b))
}
