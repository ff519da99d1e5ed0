package buffer

// TextStorage defines the storage operations the editor and its history use.
// Positions and lengths are expressed in runes (not bytes).
type TextStorage interface {
	Insert(pos int, s []rune) error
	Delete(start, end int) error
	Replace(start, end int, s []rune) error
	Slice(start, end int) []rune
	RuneAt(i int) rune
	Len() int
	LineAt(idx int) (start, end int)
	String() string
}

var _ TextStorage = (*GapBuffer)(nil)
