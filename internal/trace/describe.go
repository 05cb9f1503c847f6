package trace

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Languages lists the languages step descriptions are available in.
var Languages = []language.Tag{language.English, language.Russian}

var english = message.NewPrinter(language.English)

var formats = map[Kind]string{
	KindInitial: "Initial array",
	KindCompare: "Compare %v and %v",
	KindSwap:    "Swap %v and %v",
	KindInOrder: "Elements are in order",
	KindSettle:  "Element at position %d is in place",
	KindSearch:  "Search for the minimum from position %d",
	KindNewMin:  "New minimum %v at position %d",
	KindTakeKey: "Take %v at position %d for insertion",
	KindShift:   "Shift %v to position %d",
	KindInsert:  "Insert %v at position %d",
	KindPartial: "Elements 0 through %d are sorted",
	KindFinal:   "Array is fully sorted",
}

var russian = map[Kind]string{
	KindInitial: "Начальное состояние массива",
	KindCompare: "Сравниваем %v и %v",
	KindSwap:    "Меняем местами %v и %v",
	KindInOrder: "Элементы в правильном порядке",
	KindSettle:  "Элемент на позиции %d теперь на своём месте",
	KindSearch:  "Ищем минимальный элемент, начиная с позиции %d",
	KindNewMin:  "Новый минимальный элемент: %v на позиции %d",
	KindTakeKey: "Берём элемент %v на позиции %d для вставки",
	KindShift:   "Сдвигаем %v на позицию %d",
	KindInsert:  "Вставляем %v на позицию %d",
	KindPartial: "Элементы с 0 по %d отсортированы",
	KindFinal:   "Массив полностью отсортирован",
}

func init() {
	for kind, format := range formats {
		if err := message.SetString(language.Russian, format, russian[kind]); err != nil {
			panic(fmt.Sprintf("trace: register %s description: %v", kind, err))
		}
	}
}

// NewPrinter returns a printer for the closest supported language to lang.
func NewPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("trace: parse language %q: %w", lang, err)
	}
	matched, _, _ := language.NewMatcher(Languages).Match(tag)
	base, _ := matched.Base()
	for _, supported := range Languages {
		if b, _ := supported.Base(); b == base {
			return message.NewPrinter(supported), nil
		}
	}
	return english, nil
}

// Describe renders the label of s with p.
func Describe(p *message.Printer, s Step) string {
	format, ok := formats[s.Kind]
	if !ok {
		return s.Kind.String()
	}
	return p.Sprintf(format, s.Args...)
}
