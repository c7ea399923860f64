package model

// WordCount слово и число его вхождений
type WordCount struct {
	Word  string
	Count int
}

// Stats статистика текста документа
type Stats struct {
	Lines    int
	Words    int
	Chars    int
	TopWords []WordCount
}
