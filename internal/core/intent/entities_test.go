package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCanonicalizesSpellings(t *testing.T) {
	assert.Equal(t, []string{"KitKat"}, Extract("Tell me about KITKAT"))
	assert.Equal(t, []string{"KitKat"}, Extract("is kit kat gluten free?"))
	assert.Equal(t, []string{"Coffee-mate"}, Extract("coffee mate flavours"))
	assert.Equal(t, []string{"Coffee-mate"}, Extract("Coffeemate flavours"))
}

func TestExtractWordBoundaries(t *testing.T) {
	assert.Empty(t, Extract("aerospace engineering"))
	assert.Equal(t, []string{"Aero"}, Extract("I love Aero bars"))

	assert.Empty(t, Extract("kilometers"))
	assert.Equal(t, []string{"MILO"}, Extract("milo for breakfast"))
}

func TestExtractMultipleEntitiesSorted(t *testing.T) {
	got := Extract("Compare Smarties and KitKat in Canada")
	assert.Equal(t, []string{"Canada", "KitKat", "Smarties"}, got)
}

func TestExtractDeduplicates(t *testing.T) {
	got := Extract("kitkat kitkat kit kat")
	assert.Equal(t, []string{"KitKat"}, got)
}

func TestExtractPeopleAndConcepts(t *testing.T) {
	assert.Equal(t, []string{"Mark Schneider"}, Extract("who is mark schneider"))
	assert.Contains(t, Extract("what is the nestle cocoa plan"), "Nestlé Cocoa Plan")
	assert.Equal(t, []string{"Sustainability"}, Extract("sustainability report"))
}

func TestExtractNothingKnown(t *testing.T) {
	assert.Empty(t, Extract("what time is it"))
	assert.Empty(t, Extract(""))
}
