// Package textvec turns free text into TF-IDF feature vectors.
package textvec

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// ErrEmptyCorpus is returned when Fit has nothing to learn a vocabulary from.
var ErrEmptyCorpus = errors.New("textvec: empty corpus")

// tokenPattern matches maximal runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lower-cases text and splits it into word tokens of length >= 2.
// Punctuation separates tokens, so "problem-solving" yields two tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vectorizer maps text to L2-normalized TF-IDF vectors over a vocabulary
// learned by Fit. It is immutable after Fit and safe for concurrent use.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// Fit learns the vocabulary and smoothed inverse document frequencies from
// texts: idf(t) = ln((1+n)/(1+df(t))) + 1.
func Fit(texts []string) (*Vectorizer, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(text) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyCorpus
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(texts))
	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v, nil
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.terms)
}

// Terms returns the vocabulary in feature order.
func (v *Vectorizer) Terms() []string {
	return append([]string(nil), v.terms...)
}

// IDF returns the inverse document frequency of term, and false if term is
// not in the vocabulary.
func (v *Vectorizer) IDF(term string) (float64, bool) {
	i, ok := v.vocab[term]
	if !ok {
		return 0, false
	}
	return v.idf[i], true
}

// Transform returns the TF-IDF vector of text. Unknown terms are ignored;
// text with no known terms maps to the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range Tokenize(text) {
		if i, ok := v.vocab[tok]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i, c := range vec {
		if c == 0 {
			continue
		}
		vec[i] = c * v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// TransformAll transforms every text in order.
func (v *Vectorizer) TransformAll(texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = v.Transform(t)
	}
	return out
}
