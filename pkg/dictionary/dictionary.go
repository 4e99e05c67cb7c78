/*
Package dictionary loads and saves the word frequency lists that feed a
suggestion trie.

Two formats are supported: a binary msgpack format (.bin) holding an entry
count followed by the entries, and a plain text format (.txt) with one
"word frequency" pair per line (frequency defaults to 1 when missing).
*/
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/listfield/pkg/suggest"
)

// Entry is one word with its frequency rank.
type Entry struct {
	Word string `msgpack:"w"`
	Freq int    `msgpack:"f"`
}

// SaveBinary writes entries to path in the binary msgpack format.
func SaveBinary(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	enc := msgpack.NewEncoder(file)
	if err := enc.Encode(len(entries)); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to write entry %q to %s: %w", e.Word, path, err)
		}
	}
	return nil
}

// LoadBinary reads entries from a binary msgpack dictionary file.
func LoadBinary(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	dec := msgpack.NewDecoder(file)
	var count int
	if err := dec.Decode(&count); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("invalid entry count in %s: %d", path, count)
	}

	// the count comes from the file; cap the initial allocation and let
	// append grow if the entries really are there
	entries := make([]Entry, 0, min(count, 4096))
	for i := 0; i < count; i++ {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to read entry %d from %s: %w", i, path, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadText reads entries from a plain text dictionary file. Each line is a
// word optionally followed by a frequency; blank lines and lines starting
// with '#' are skipped.
func LoadText(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		freq := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Warnf("skipping line %d of %s: bad frequency %q", lineNo, path, fields[1])
				continue
			}
			freq = n
		}
		entries = append(entries, Entry{Word: fields[0], Freq: freq})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// Load picks the format from the file extension: .bin is msgpack, anything
// else is treated as text.
func Load(path string) ([]Entry, error) {
	if strings.ToLower(filepath.Ext(path)) == ".bin" {
		return LoadBinary(path)
	}
	return LoadText(path)
}

// Cap truncates entries to at most maxWords. Zero or negative means
// unlimited.
func Cap(entries []Entry, maxWords int) []Entry {
	if maxWords > 0 && len(entries) > maxWords {
		return entries[:maxWords]
	}
	return entries
}

// LoadInto loads a dictionary file into the trie, keeping at most maxWords
// entries (0 means unlimited), and returns the number of words added.
func LoadInto(trie *suggest.Trie, path string, maxWords int) (int, error) {
	entries, err := Load(path)
	if err != nil {
		return 0, err
	}
	entries = Cap(entries, maxWords)
	for _, e := range entries {
		trie.AddWord(e.Word, e.Freq)
	}
	log.Debugf("loaded %d words from %s", len(entries), path)
	return len(entries), nil
}
