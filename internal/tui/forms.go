package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studysesh/study-sesh/models"
)

type formSavedMsg struct {
	err error
}

// resourceForm is the shared add/edit form for the four planner resources.
// Labels and inputs vary per section; the note form additionally carries a
// textarea for the body.
type resourceForm struct {
	section section
	editing bool
	id      int64

	labels  []string
	inputs  []textinput.Model
	area    textarea.Model
	hasArea bool

	// focus walks the inputs first; len(inputs) means the textarea.
	focus      int
	submitting bool
	errMsg     string
}

func newFormInputs(labels []string) []textinput.Model {
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(label)
		inputs[i].Width = 50
	}
	inputs[0].Focus()
	return inputs
}

func newSubjectForm(item *models.Subject) *resourceForm {
	f := &resourceForm{
		section: sectionSubjects,
		labels:  []string{"Name", "Description"},
	}
	f.inputs = newFormInputs(f.labels)
	if item != nil {
		f.editing = true
		f.id = item.ID
		f.inputs[0].SetValue(item.Name)
		f.inputs[1].SetValue(item.Description)
	}
	return f
}

func newAssignmentForm(item *models.Assignment) *resourceForm {
	f := &resourceForm{
		section: sectionAssignments,
		labels:  []string{"Title", "Subject ID", "Due date", "Description", "Status"},
	}
	f.inputs = newFormInputs(f.labels)
	f.inputs[2].Placeholder = "2026-09-15"
	f.inputs[4].Placeholder = "pending"
	if item != nil {
		f.editing = true
		f.id = item.ID
		f.inputs[0].SetValue(item.Title)
		f.inputs[1].SetValue(formatID(item.SubjectID))
		f.inputs[2].SetValue(item.DueDate)
		f.inputs[3].SetValue(item.Description)
		f.inputs[4].SetValue(item.Status)
	}
	return f
}

func newNoteForm(item *models.Note) *resourceForm {
	f := &resourceForm{
		section: sectionNotes,
		labels:  []string{"Title", "Subject ID", "Tags"},
		hasArea: true,
	}
	f.inputs = newFormInputs(f.labels)
	f.area = textarea.New()
	f.area.Placeholder = "content"
	f.area.SetWidth(60)
	f.area.SetHeight(8)
	if item != nil {
		f.editing = true
		f.id = item.ID
		f.inputs[0].SetValue(item.Title)
		f.inputs[1].SetValue(formatID(item.SubjectID))
		f.inputs[2].SetValue(item.Tags)
		f.area.SetValue(item.Content)
	}
	return f
}

func newTestForm(item *models.Test) *resourceForm {
	f := &resourceForm{
		section: sectionTests,
		labels:  []string{"Title", "Subject ID", "Test date", "Score"},
	}
	f.inputs = newFormInputs(f.labels)
	f.inputs[2].Placeholder = "2026-09-15"
	f.inputs[3].Placeholder = "empty until graded"
	if item != nil {
		f.editing = true
		f.id = item.ID
		f.inputs[0].SetValue(item.Title)
		f.inputs[1].SetValue(formatID(item.SubjectID))
		f.inputs[2].SetValue(item.TestDate)
		if item.Score != nil {
			f.inputs[3].SetValue(strconv.FormatFloat(*item.Score, 'f', -1, 64))
		}
	}
	return f
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func (f *resourceForm) init() tea.Cmd {
	return textinput.Blink
}

func (f *resourceForm) areaFocused() bool {
	return f.hasArea && f.focus == len(f.inputs)
}

func (f *resourceForm) fieldCount() int {
	if f.hasArea {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

func (f *resourceForm) focusNext() {
	f.blur()
	f.focus = (f.focus + 1) % f.fieldCount()
	f.focusCurrent()
}

func (f *resourceForm) focusPrev() {
	f.blur()
	f.focus = (f.focus - 1 + f.fieldCount()) % f.fieldCount()
	f.focusCurrent()
}

func (f *resourceForm) blur() {
	if f.areaFocused() {
		f.area.Blur()
		return
	}
	f.inputs[f.focus].Blur()
}

func (f *resourceForm) focusCurrent() {
	if f.areaFocused() {
		f.area.Focus()
		return
	}
	f.inputs[f.focus].Focus()
}

func (f *resourceForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.areaFocused() {
		f.area, cmd = f.area.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// validate checks the presence rules the server enforces, so the user gets
// the message before a round trip.
func (f *resourceForm) validate() string {
	first := strings.TrimSpace(f.inputs[0].Value())
	if first == "" {
		if f.section == sectionSubjects {
			return "Name is required"
		}
		return "Title is required"
	}
	return ""
}

func (f *resourceForm) toSubject() models.Subject {
	return models.Subject{
		ID:          f.id,
		Name:        strings.TrimSpace(f.inputs[0].Value()),
		Description: strings.TrimSpace(f.inputs[1].Value()),
	}
}

func (f *resourceForm) toAssignment() (models.Assignment, error) {
	subjectID, err := parseOptionalID(f.inputs[1].Value())
	if err != nil {
		return models.Assignment{}, err
	}
	return models.Assignment{
		ID:          f.id,
		SubjectID:   subjectID,
		Title:       strings.TrimSpace(f.inputs[0].Value()),
		DueDate:     strings.TrimSpace(f.inputs[2].Value()),
		Description: strings.TrimSpace(f.inputs[3].Value()),
		Status:      strings.TrimSpace(f.inputs[4].Value()),
	}, nil
}

func (f *resourceForm) toNote() (models.Note, error) {
	subjectID, err := parseOptionalID(f.inputs[1].Value())
	if err != nil {
		return models.Note{}, err
	}
	return models.Note{
		ID:        f.id,
		SubjectID: subjectID,
		Title:     strings.TrimSpace(f.inputs[0].Value()),
		Tags:      strings.TrimSpace(f.inputs[2].Value()),
		Content:   f.area.Value(),
	}, nil
}

func (f *resourceForm) toTest() (models.Test, error) {
	subjectID, err := parseOptionalID(f.inputs[1].Value())
	if err != nil {
		return models.Test{}, err
	}

	var score *float64
	if raw := strings.TrimSpace(f.inputs[3].Value()); raw != "" {
		parsed, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return models.Test{}, fmt.Errorf("score must be a number")
		}
		score = &parsed
	}

	return models.Test{
		ID:        f.id,
		SubjectID: subjectID,
		Title:     strings.TrimSpace(f.inputs[0].Value()),
		TestDate:  strings.TrimSpace(f.inputs[2].Value()),
		Score:     score,
	}, nil
}

func parseOptionalID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("subject id must be a number")
	}
	return id, nil
}

func (f *resourceForm) view() string {
	title := "New " + strings.ToLower(strings.TrimSuffix(sectionNames[f.section], "s"))
	if f.editing {
		title = "Edit: " + f.inputs[0].Value()
	}

	labelWidth := 0
	for _, label := range f.labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", labelWidth, label, f.inputs[i].View()))
	}
	if f.hasArea {
		b.WriteString("\nContent:\n")
		b.WriteString(f.area.View())
		b.WriteString("\n")
	}

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\nError: " + f.errMsg + "\n")
	}

	hotKeys := "esc: cancel │ tab: next field │ enter: save"
	if f.hasArea {
		hotKeys = "esc: cancel │ tab: next field │ ctrl+s: save"
	}

	return renderPage(strings.ToUpper(title), strings.TrimRight(b.String(), "\n"), hotKeys)
}
