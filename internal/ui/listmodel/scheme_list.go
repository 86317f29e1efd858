package listmodel

import (
	"github.com/bnema/schemer/internal/application/port"
	"github.com/bnema/schemer/internal/domain/entity"
)

// Label keys looked up through the translator.
const (
	LabelSystem = "System"
	LabelDay    = "Day"
	LabelNight  = "Night"
)

type schemeItem struct {
	text   string
	scheme entity.ColorScheme
}

// DefaultSchemeList is the built-in System / Day / Night list.
type DefaultSchemeList struct {
	items []schemeItem
}

var _ port.SchemeList = (*DefaultSchemeList)(nil)

// NewDefaultSchemeList builds the list with labels resolved through tr.
// A nil translator keeps the English labels.
func NewDefaultSchemeList(tr port.Translator) *DefaultSchemeList {
	if tr == nil {
		tr = port.TranslatorFunc(func(key string) string { return key })
	}
	return &DefaultSchemeList{
		items: []schemeItem{
			{text: tr.Tr(LabelSystem), scheme: entity.ColorSchemeSystem},
			{text: tr.Tr(LabelDay), scheme: entity.ColorSchemeDay},
			{text: tr.Tr(LabelNight), scheme: entity.ColorSchemeNight},
		},
	}
}

// Size implements port.SchemeList.
func (l *DefaultSchemeList) Size() int {
	return len(l.items)
}

// Label implements port.SchemeList.
func (l *DefaultSchemeList) Label(i int) string {
	return l.at(i).text
}

// Scheme implements port.SchemeList.
func (l *DefaultSchemeList) Scheme(i int) entity.ColorScheme {
	return l.at(i).scheme
}

func (l *DefaultSchemeList) at(i int) schemeItem {
	if i < 0 || i >= len(l.items) {
		panic(&IndexError{Index: i, Size: len(l.items)})
	}
	return l.items[i]
}
