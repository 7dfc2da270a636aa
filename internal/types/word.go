package types

import "fmt"

/////////////////////////////////////////////////////////////////////////////
// WORD COUNT
/////////////////////////////////////////////////////////////////////////////

// WordCount is one row of a frequency report.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (w WordCount) String() string {
	return fmt.Sprintf("%s: %d", w.Word, w.Count)
}

/////////////////////////////////////////////////////////////////////////////
// WORD STATS
/////////////////////////////////////////////////////////////////////////////

type Stats struct {
	TotalTokens  int `json:"total_tokens"`
	Discarded    int `json:"discarded"`
	CountedWords int `json:"counted_words"`
	UniqueWords  int `json:"unique_words"`
}
