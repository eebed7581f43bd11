package model

// Value is the closed set of field value shapes. Only Text and Selection
// implement it.
type Value interface {
	Kind() FieldKind
	isValue()
}

// Text holds free text plus its input-kind tag and placeholder. The text is
// absent until set through Model.SetValue.
type Text struct {
	Input       InputKind
	Placeholder string

	text string
	set  bool
}

// NewText returns an empty text value. Unknown input kinds fall back to
// InputKindString.
func NewText(input InputKind, placeholder string) Text {
	if !input.Valid() {
		input = InputKindString
	}
	return Text{Input: input, Placeholder: placeholder}
}

// Kind implements Value.
func (Text) Kind() FieldKind { return FieldKindText }

func (Text) isValue() {}

// Text returns the stored text and whether it has been set.
func (t Text) Text() (string, bool) {
	return t.text, t.set
}

// String returns the stored text, or "" when absent.
func (t Text) String() string {
	return t.text
}

func (t Text) with(text string) Text {
	t.text = text
	t.set = true
	return t
}

// Selection holds a single choice among fixed options.
type Selection struct {
	Options     []string
	Placeholder string

	// pick is the chosen index plus one; zero means nothing is chosen.
	pick int
}

// NewSelection returns a selection with no option chosen.
func NewSelection(placeholder string, options ...string) Selection {
	return Selection{
		Options:     append([]string(nil), options...),
		Placeholder: placeholder,
	}
}

// Kind implements Value.
func (Selection) Kind() FieldKind { return FieldKindSelection }

func (Selection) isValue() {}

// Selected returns the chosen index and whether one is chosen.
func (s Selection) Selected() (int, bool) {
	idx := s.pick - 1
	if idx < 0 || idx >= len(s.Options) {
		return NoSelection, false
	}
	return idx, true
}

// Choice returns the chosen option label.
func (s Selection) Choice() (string, bool) {
	idx, ok := s.Selected()
	if !ok {
		return "", false
	}
	return s.Options[idx], true
}

func (s Selection) with(index int) Selection {
	s.Options = append([]string(nil), s.Options...)
	if index < 0 {
		s.pick = 0
		return s
	}
	s.pick = index + 1
	return s
}

func (s Selection) clone() Selection {
	s.Options = append([]string(nil), s.Options...)
	return s
}
