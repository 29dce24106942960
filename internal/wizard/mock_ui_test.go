package wizard

// MockUI records calls and delegates to optional funcs.
type MockUI struct {
	ConfirmFunc     func(title string, value *bool) error
	MultiSelectFunc func(title string, options []Choice, selected *[]string) error
	NoteFunc        func(title string, body string) error

	Notes []string
}

func (m *MockUI) Confirm(title string, _ string, value *bool) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(title, value)
	}
	return nil
}

func (m *MockUI) MultiSelect(title string, options []Choice, selected *[]string) error {
	if m.MultiSelectFunc != nil {
		return m.MultiSelectFunc(title, options, selected)
	}
	return nil
}

func (m *MockUI) Note(title string, body string) error {
	m.Notes = append(m.Notes, body)
	if m.NoteFunc != nil {
		return m.NoteFunc(title, body)
	}
	return nil
}
