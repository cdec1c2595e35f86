// Command tentoku tokenizes a line of Japanese text against a JMDict
// XML file and prints the resulting tokens as JSON. It loads the
// dictionary once, clears the logs directory, runs the pipeline against
// one sentence, prints the result as indented JSON, and persists a
// debug dump via logger.LogJSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/eridgd/tentoku"
	"github.com/eridgd/tentoku/dictionary"
	"github.com/eridgd/tentoku/logger"
)

const defaultText = "秋田県仙北市は市内を流れる入見内川の水位が高まっているため、避難の情報を出しました。"

func main() {
	dictPath := flag.String("dict", "dict/JMdict_e", "path to a JMDict XML file")
	logDir := flag.String("logs", "logs", "directory for debug JSON dumps")
	maxResults := flag.Int("max-results", tentoku.DefaultMaxResults, "max candidates considered per word-search step")
	text := flag.String("text", defaultText, "Japanese text to tokenize")
	flag.Parse()

	tracer := logger.Tracer()

	jmdict, err := dictionary.LoadJMDict(*dictPath)
	if err != nil {
		tracer.Errorf("failed to load JMDict from %s: %v", *dictPath, err)
		fmt.Fprintf(os.Stderr, "failed to load dictionary: %v\n", err)
		os.Exit(1)
	}
	dict := dictionary.NewCombinedDictionary(jmdict)

	if err := os.MkdirAll(*logDir, 0755); err == nil {
		if err := logger.InitLogs(*logDir); err != nil {
			tracer.Errorf("failed to init logs dir %s: %v", *logDir, err)
		}
	}

	tokens, err := tentoku.Tokenize(*text, dict, *maxResults)
	if err != nil {
		tracer.Errorf("tokenize failed: %v", err)
		fmt.Fprintf(os.Stderr, "tokenize failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		tracer.Errorf("marshal tokens: %v", err)
		fmt.Fprintf(os.Stderr, "marshal tokens: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if err := logger.LogJSON(*logDir, "tokens", tokens); err != nil {
		tracer.Errorf("failed to write token log: %v", err)
	}
}
