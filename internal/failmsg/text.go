package failmsg

// Text is a string that may be absent. The zero value is absent.
//
// Absence is a legitimate state, not an error: Format renders an absent Text as the literal "null".
type Text struct {
	value   string
	present bool
}

// Some returns a present Text holding s. Some("") is present and empty, which is different from Absent().
func Some(s string) Text {
	return Text{value: s, present: true}
}

// Absent returns a Text with no value.
func Absent() Text {
	return Text{}
}

// FromPtr returns Absent() if p is nil, and Some(*p) otherwise.
func FromPtr(p *string) Text {
	if p == nil {
		return Absent()
	}
	return Some(*p)
}

// Get returns the value and whether it is present. If absent, the value is "".
func (t Text) Get() (string, bool) {
	return t.value, t.present
}

// IsPresent reports whether t holds a value.
func (t Text) IsPresent() bool {
	return t.present
}

// Or returns the value if present, and fallback otherwise.
func (t Text) Or(fallback string) string {
	if !t.present {
		return fallback
	}
	return t.value
}

// String renders t the way it appears in a failure message: its value, or "null" if absent.
func (t Text) String() string {
	return t.Or(nullLiteral)
}
