package viz

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/sortviz/internal/playback"
)

// Russian translations of the interface labels. Step descriptions are
// translated by the trace package.
var russianLabels = map[string]string{
	"Step %d of %d (%d%%)":    "Шаг %d из %d (%d%%)",
	"Elements":                "Элементов",
	"Total steps":             "Всего шагов",
	"Status":                  "Статус",
	"Speed":                   "Скорость",
	"%d ms":                   "%d мс",
	"Time":                    "Время",
	"Memory":                  "Память",
	"Ready":                   "Готово",
	"Sorting...":              "Сортируется...",
	"Paused":                  "Пауза",
	"Sorted":                  "Отсортировано",
	"No data to display":      "Нет данных для отображения",
	"Algorithm comparison":    "Сравнение алгоритмов",
	"Comparisons":             "Сравнения",
	"Swaps":                   "Обмены",
	"Steps":                   "Шаги",
	"Comparisons so far":      "Сравнений на текущем шаге",
	"Keyboard shortcuts":      "Клавиши управления",
	"Play / pause":            "Старт / пауза",
	"Step backward / forward": "Шаг назад / вперёд",
	"Reset":                   "Сброс",
	"New array":               "Новый массив",
	"Next algorithm":          "Следующий алгоритм",
	"Faster / slower":         "Быстрее / медленнее",
	"Cycle themes":            "Сменить тему",
	"Switch language":         "Сменить язык",
	"Toggle this help":        "Показать / скрыть справку",
	"Quit":                    "Выход",
}

const hintLine = "space play  ←/→ step  r reset  n new  tab algorithm  ? help  q quit"

func init() {
	russianLabels[hintLine] = "пробел старт  ←/→ шаг  r сброс  n новый  tab алгоритм  ? справка  q выход"
	for key, msg := range russianLabels {
		if err := message.SetString(language.Russian, key, msg); err != nil {
			panic(fmt.Sprintf("viz: register label %q: %v", key, err))
		}
	}
}

func statusLabel(s playback.Status) string {
	switch s {
	case playback.StatusPlaying:
		return "Sorting..."
	case playback.StatusPaused:
		return "Paused"
	case playback.StatusCompleted:
		return "Sorted"
	default:
		return "Ready"
	}
}
