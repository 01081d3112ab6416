package viewstate

import "slices"

// FilterSet - упорядоченный набор активных фильтров, уникальных по метке.
// Порядок отображения совпадает с порядком добавления.
type FilterSet struct {
	labels []string
}

// NewFilterSet создает набор из меток по умолчанию, пропуская пустые и повторы
func NewFilterSet(defaults ...string) *FilterSet {
	f := &FilterSet{labels: make([]string, 0, len(defaults))}
	for _, label := range defaults {
		if label == "" || slices.Contains(f.labels, label) {
			continue
		}
		f.labels = append(f.labels, label)
	}
	return f
}

// Labels возвращает копию меток
func (f *FilterSet) Labels() []string {
	return slices.Clone(f.labels)
}

func (f *FilterSet) Len() int {
	return len(f.labels)
}

func (f *FilterSet) Contains(label string) bool {
	return slices.Contains(f.labels, label)
}

// Remove удаляет фильтр с указанной меткой. Отсутствующая метка - no-op.
func (f *FilterSet) Remove(label string) bool {
	i := slices.Index(f.labels, label)
	if i < 0 {
		return false
	}
	f.labels = slices.Delete(slices.Clone(f.labels), i, i+1)
	return true
}
