package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordsDropsStopWordsAndShortTokens(t *testing.T) {
	got := Keywords("where can I buy a KitKat bar", 5)
	assert.Equal(t, []string{"buy", "kitkat", "bar"}, got)
}

func TestKeywordsCapsAndDeduplicates(t *testing.T) {
	got := Keywords("chocolate chocolate wafer crispy delicious treat", 3)
	assert.Equal(t, []string{"chocolate", "wafer", "crispy"}, got)
}

func TestKeywordsEmptyQuery(t *testing.T) {
	assert.Empty(t, Keywords("", 3))
	assert.Empty(t, Keywords("a an it", 3))
}
