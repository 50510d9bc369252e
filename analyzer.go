package main

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	answerSynonyms  = "synonyms"
	answerDifferent = "different"
	answerNoWords   = "no words"
)

// wordPair takes the first and the last token of an entry, lower-cased.
// Entries with fewer than two tokens or an empty token are rejected.
func wordPair(entry []string) (string, string, bool) {
	if len(entry) < 2 {
		return "", "", false
	}
	first, last := strings.ToLower(entry[0]), strings.ToLower(entry[len(entry)-1])
	if first == "" || last == "" {
		return "", "", false
	}
	return first, last, true
}

// buildDictionary feeds the pairs into a fresh set in input order. A word
// seen for the first time is always the second argument of the union, so
// its slot becomes the set id and every parent entry stays flat.
func buildDictionary(pairs [][]string) (*disjointSet[string], bool) {
	d := newDisjointSet[string]()
	for _, p := range pairs {
		w1, w2, ok := wordPair(p)
		if !ok {
			return d, false
		}
		_, ok1 := d.setOf(w1)
		_, ok2 := d.setOf(w2)
		switch {
		case !ok1 && !ok2:
			d.addSetWith(w1)
			d.addSetWith(w2)
			d.unionSetsContaining(w1, w2)
		case !ok1:
			d.addSetWith(w1)
			d.unionSetsContaining(w2, w1)
		case !ok2:
			d.addSetWith(w2)
			d.unionSetsContaining(w1, w2)
		default:
			d.unionSetsContaining(w1, w2)
		}
	}
	return d, true
}

func answerQuery(d *disjointSet[string], q1, q2 string) string {
	if q1 == q2 {
		return answerSynonyms
	}
	s1, ok := d.setOf(q1)
	if !ok {
		return answerDifferent
	}
	s2, ok := d.setOf(q2)
	if !ok {
		return answerDifferent
	}
	if s1 == s2 {
		return answerSynonyms
	}
	return answerDifferent
}

// analyzeTestCase answers the queries of tc in order. A degenerate query
// yields "no words" and ends the test case; a degenerate dictionary entry
// yields a single "no words" before any query is answered.
func analyzeTestCase(tc testCase) []string {
	d, ok := buildDictionary(tc.Dictionary)
	if !ok {
		return []string{answerNoWords}
	}
	res := make([]string, 0, len(tc.Queries))
	for _, q := range tc.Queries {
		q1, q2, ok := wordPair(q)
		if !ok {
			res = append(res, answerNoWords)
			break
		}
		res = append(res, answerQuery(d, q1, q2))
	}
	return res
}

// analyze answers every test case and concatenates the answers in test case
// order. Up to workers test cases are analyzed at once.
func analyze(cases []testCase, workers int) []string {
	perCase := make([][]string, len(cases))
	if workers <= 1 {
		for i, tc := range cases {
			perCase[i] = analyzeTestCase(tc)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, tc := range cases {
			i, tc := i, tc
			g.Go(func() error {
				perCase[i] = analyzeTestCase(tc)
				return nil
			})
		}
		_ = g.Wait()
	}

	n := 0
	for _, a := range perCase {
		n += len(a)
	}
	res := make([]string, 0, n)
	for _, a := range perCase {
		res = append(res, a...)
	}
	return res
}
