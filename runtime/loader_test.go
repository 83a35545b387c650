package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	data, err := LoadCensoredWords()
	req.NoError(err)

	// Then every embedded dictionary contributed its language
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)

	// And duplicates across languages are merged
	req.NotEmpty(data.Words)
	seen := map[string]int{}
	for _, w := range data.Words {
		seen[w]++
	}
	req.Equal(1, seen["idiot"])
}
