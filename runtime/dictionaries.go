package runtime

import "embed"

//go:embed censored/*.txt
var censoredFS embed.FS

// LoadCensoredWords loads the embedded per-language dictionaries.
func LoadCensoredWords() (*CensoredData, error) {
	return NewCensoredLoader(censoredFS).LoadAll("censored")
}
