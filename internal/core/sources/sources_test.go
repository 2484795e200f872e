package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevantEntityPagesFirst(t *testing.T) {
	got := Relevant("tell me about kitkat", []string{"KitKat"})
	assert.Equal(t, "https://www.madewithnestle.ca/brands/kitkat", got[0])
}

func TestRelevantTopicPages(t *testing.T) {
	assert.Contains(t, Relevant("sustainability efforts", nil), Sustainability)
	assert.Contains(t, Relevant("holiday baking ideas", nil), Recipes)
	assert.Contains(t, Relevant("who is the ceo", nil), Corporate)
}

func TestRelevantDefaultsToMainSite(t *testing.T) {
	assert.Equal(t, []string{MainSite}, Relevant("hello there", nil))
}

func TestRelevantCapsAtFour(t *testing.T) {
	got := Relevant("compare product recipes for the company sustainability report",
		[]string{"KitKat", "Smarties", "Aero", "Coffee-mate", "Quality Street"})
	assert.Len(t, got, 4)
}

func TestRelevantDeduplicates(t *testing.T) {
	got := Relevant("kitkat", []string{"KitKat", "KitKat"})
	assert.Equal(t, []string{"https://www.madewithnestle.ca/brands/kitkat"}, got)
}
