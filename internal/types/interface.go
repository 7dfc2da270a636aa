package types

// Tokenizer yields raw whitespace-delimited tokens until the stream is exhausted.
type Tokenizer interface {
	Next() (string, bool)
}

// Counter with statistics
type Counter interface {
	Record(word string)
	Sorted() []WordCount
	GetStats() Stats
}
