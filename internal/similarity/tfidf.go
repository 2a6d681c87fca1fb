// Package similarity scores lexical similarity between a job description and
// a resume using TF-IDF weighted cosine similarity.
package similarity

import (
	"math"
	"sort"
)

// Score computes the content similarity between a job description and one
// resume on a 0-100 scale.
//
// The vector space is built per resume: the vocabulary is the union of terms
// across the two documents and IDF is computed over that two-document corpus,
// so each resume is scored against the job description independently of its
// siblings. Identical texts score 100, disjoint vocabularies score 0, and a
// document with no usable terms scores 0 rather than NaN.
func Score(jobText, resumeText string) float64 {
	jobTerms := Tokenize(jobText)
	resumeTerms := Tokenize(resumeText)
	if len(jobTerms) == 0 || len(resumeTerms) == 0 {
		return 0
	}

	jobTF := termFrequencies(jobTerms)
	resumeTF := termFrequencies(resumeTerms)

	// Smoothed IDF over the two-document corpus: ln((1+N)/(1+df)) + 1.
	idf := func(term string) float64 {
		df := 0
		if jobTF[term] > 0 {
			df++
		}
		if resumeTF[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	// Accumulate in sorted vocabulary order: float summation order must be
	// stable for identical inputs to yield identical scores.
	vocab := make([]string, 0, len(jobTF)+len(resumeTF))
	seen := make(map[string]bool, len(jobTF)+len(resumeTF))
	for _, tf := range []map[string]float64{jobTF, resumeTF} {
		for term := range tf {
			if !seen[term] {
				seen[term] = true
				vocab = append(vocab, term)
			}
		}
	}
	sort.Strings(vocab)

	var dot, jobNorm, resumeNorm float64
	for _, term := range vocab {
		w := idf(term)
		jw := jobTF[term] * w
		rw := resumeTF[term] * w
		dot += jw * rw
		jobNorm += jw * jw
		resumeNorm += rw * rw
	}

	if jobNorm == 0 || resumeNorm == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(jobNorm) * math.Sqrt(resumeNorm))
	if cos < 0 {
		cos = 0
	}
	if cos > 1 {
		cos = 1
	}
	return cos * 100
}

// termFrequencies returns length-normalized term counts.
func termFrequencies(terms []string) map[string]float64 {
	tf := make(map[string]float64, len(terms))
	for _, term := range terms {
		tf[term]++
	}
	n := float64(len(terms))
	for term := range tf {
		tf[term] /= n
	}
	return tf
}
