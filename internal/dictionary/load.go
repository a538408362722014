package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ulikunitz/xz"
	"golang.org/x/text/unicode/norm"
)

//go:embed data/jmdict.jsonl.xz
var embeddedCorpus []byte

// ErrEmptyCorpus is returned when a corpus stream holds no entries.
var ErrEmptyCorpus = errors.New("dictionary: corpus has no entries")

const maxLineSize = 1 << 20

// Decode reads one JSON encoded Entry per line. Blank lines are skipped and
// all text is NFC normalized so readings compare equal to transliterator
// output.
func Decode(r io.Reader) (Corpus, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var corpus Corpus
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decoding entry on line %d: %w", line, err)
		}
		normalize(&e)
		if e.ID == 0 {
			e.ID = int64(len(corpus) + 1)
		}
		corpus = append(corpus, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	return corpus, nil
}

// DecodeXZ is Decode for an xz compressed stream.
func DecodeXZ(r io.Reader) (Corpus, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening xz stream: %w", err)
	}
	return Decode(xr)
}

// Open reads a corpus file; files ending in .xz are decompressed.
func Open(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".xz") {
		return DecodeXZ(bufio.NewReader(f))
	}
	return Decode(f)
}

// Encode writes corpus in the format Decode reads.
func Encode(w io.Writer, corpus Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, e := range corpus {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding entry %d: %w", e.ID, err)
		}
	}
	return nil
}

var loadEmbedded = sync.OnceValues(func() (Corpus, error) {
	return DecodeXZ(bytes.NewReader(embeddedCorpus))
})

// LoadEmbedded decodes the corpus compiled into the binary. The result is
// shared and must not be modified.
func LoadEmbedded() (Corpus, error) {
	return loadEmbedded()
}

func normalize(e *Entry) {
	for i, k := range e.Kanji {
		e.Kanji[i] = norm.NFC.String(strings.TrimSpace(k))
	}
	for i, r := range e.Readings {
		e.Readings[i] = norm.NFC.String(strings.TrimSpace(r))
	}
	for i := range e.Senses {
		for j, g := range e.Senses[i].Glosses {
			e.Senses[i].Glosses[j] = norm.NFC.String(g)
		}
	}
}
