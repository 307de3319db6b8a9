package engine

// Kind classifies one slot in a segmented value representation.
type Kind int

const (
	KindDigit Kind = iota
	KindSign
	KindToken
	KindSeparator
	KindIndicator
)

// NoSelection is the cursor sentinel for "no field selected".
const NoSelection = -1

// Field is one editable or static unit of the on-screen representation.
// Digit fields carry Digit (0-9); Sign and Token fields carry TokenIdx into
// Tokens. Separator and Indicator fields render Text only.
type Field struct {
	Index    int
	Kind     Kind
	Editable bool
	Hidden   bool
	Bidi     bool // travels with the adjacent digit run in RTL display order
	Group    int  // component group for typed-digit validation; -1 when none
	Place    int  // decimal place within the group, 0 = ones
	Text     string
	Digit    int
	TokenIdx int
	Tokens   [2]string
}

// Sequence owns the ordered fields of one editor plus the cursor and the
// derived display order. It is rebuilt wholesale on reconfiguration and never
// shared between editor instances.
type Sequence struct {
	fields  []Field
	display []int
	sel     int
	rtl     bool
}

// NewSequence assigns stable indexes, computes the display order and starts
// with no selection. The caller selects an initial field afterwards.
func NewSequence(fields []Field, rtl bool) *Sequence {
	s := &Sequence{fields: fields, sel: NoSelection, rtl: rtl}
	for i := range s.fields {
		s.fields[i].Index = i
	}
	s.recomputeDisplay()
	return s
}

func (s *Sequence) Len() int            { return len(s.fields) }
func (s *Sequence) Fields() []Field     { return s.fields }
func (s *Sequence) Field(i int) *Field  { return &s.fields[i] }
func (s *Sequence) Selected() int       { return s.sel }
func (s *Sequence) DisplayOrder() []int { return s.display }

// Select moves the cursor to field i. Selection only ever lands on an
// editable, visible field; anything else is refused.
func (s *Sequence) Select(i int) bool {
	if i == NoSelection {
		s.sel = NoSelection
		return true
	}
	if i < 0 || i >= len(s.fields) {
		return false
	}
	f := &s.fields[i]
	if !f.Editable || f.Hidden {
		return false
	}
	s.sel = i
	return true
}

// MoveCursor scans display-ordered fields from the current selection in the
// given direction (+1 right, -1 left), skipping non-editable fields. When no
// qualifying field exists in that direction the selection becomes
// NoSelection; it does not wrap.
func (s *Sequence) MoveCursor(dir int) int {
	pos := -1
	if s.sel != NoSelection {
		for di, idx := range s.display {
			if idx == s.sel {
				pos = di
				break
			}
		}
	} else if dir < 0 {
		pos = len(s.display)
	}
	for {
		pos += dir
		if pos < 0 || pos >= len(s.display) {
			s.sel = NoSelection
			return NoSelection
		}
		f := &s.fields[s.display[pos]]
		if f.Editable && !f.Hidden {
			s.sel = f.Index
			return s.sel
		}
	}
}

// RecomputeDisplay refreshes the display order after hidden flags change.
// A selection that became hidden is dropped.
func (s *Sequence) RecomputeDisplay() {
	s.recomputeDisplay()
	if s.sel != NoSelection {
		f := &s.fields[s.sel]
		if !f.Editable || f.Hidden {
			s.sel = NoSelection
		}
	}
}

// recomputeDisplay builds the rendering order. Left-to-right layouts use
// logical order minus hidden fields. Right-to-left layouts reverse each
// contiguous run of direction-flippable fields (digits, sign, and
// Bidi-marked continuations) as a unit, flushing the run whenever a
// non-flippable field is reached.
func (s *Sequence) recomputeDisplay() {
	s.display = s.display[:0]
	if !s.rtl {
		for i := range s.fields {
			if !s.fields[i].Hidden {
				s.display = append(s.display, i)
			}
		}
		return
	}
	var run []int
	flush := func() {
		for i := len(run) - 1; i >= 0; i-- {
			s.display = append(s.display, run[i])
		}
		run = run[:0]
	}
	for i := range s.fields {
		f := &s.fields[i]
		if f.Hidden {
			continue
		}
		if flippable(f) {
			run = append(run, i)
			continue
		}
		flush()
		s.display = append(s.display, i)
	}
	flush()
}

func flippable(f *Field) bool {
	return f.Kind == KindDigit || f.Kind == KindSign || f.Bidi
}
