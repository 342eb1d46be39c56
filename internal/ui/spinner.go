package ui

// SpinnerBox lets the user cycle through a fixed list of options with the
// left and right keys. Enter advances like right.
type SpinnerBox struct {
	FocusableBase
	Options []string
	Index   int

	label *TextBlock
	value *TextBlock
	panel *StackPanel
}

func NewSpinnerBox(d *Display, l StateListener, label string, options []string) *SpinnerBox {
	s := &SpinnerBox{
		FocusableBase: NewFocusableBase(d, l),
		Options:       options,
		label:         NewTextBlock(d, label),
		value:         NewTextBlock(d, ""),
	}
	s.panel = NewStackPanel(d, Horizontal)
	s.panel.Add(s.label, s.value)
	return s
}

// Value returns the selected option, or "" when there are none.
func (s *SpinnerBox) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// SetValue selects the option equal to v. Unknown values are ignored.
func (s *SpinnerBox) SetValue(v string) bool {
	for i, o := range s.Options {
		if o == v {
			s.Index = i
			return true
		}
	}
	return false
}

func (s *SpinnerBox) Focus() {
	s.FocusableBase.Focus()
	s.label.Highlighted = true
	s.value.Highlighted = true
}

func (s *SpinnerBox) Blur() {
	s.FocusableBase.Blur()
	s.label.Highlighted = false
	s.value.Highlighted = false
}

func (s *SpinnerBox) Arrange() Size {
	s.value.SetText("< " + s.Value() + " >")
	return s.setDesired(s.panel.Arrange())
}

func (s *SpinnerBox) Render() Rect {
	if !s.Visible() {
		return s.empty()
	}
	s.panel.SetPos(s.Pos())
	return s.finish(s.panel.Render())
}

func (s *SpinnerBox) HandleKey(k Key) bool {
	n := len(s.Options)
	if n == 0 {
		return false
	}
	switch k {
	case KeyLeft:
		s.Index = (s.Index - 1 + n) % n
	case KeyRight, KeyEnter:
		s.Index = (s.Index + 1) % n
	default:
		return false
	}
	s.notify(s)
	return true
}
