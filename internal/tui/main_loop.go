package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/models"
)

type section int

const (
	sectionSubjects section = iota
	sectionAssignments
	sectionNotes
	sectionTests
	sectionAssistant
)

var sectionNames = [...]string{"Subjects", "Assignments", "Notes", "Tests", "Assistant"}

type subjectsLoadedMsg struct {
	items []models.Subject
	err   error
}

type assignmentsLoadedMsg struct {
	items []models.Assignment
	done  map[int64]bool
	err   error
}

type notesLoadedMsg struct {
	items []models.Note
	err   error
}

type testsLoadedMsg struct {
	items []models.Test
	err   error
}

type doneToggledMsg struct {
	done map[int64]bool
	err  error
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	section section
	idx     int
	loading bool
	status  string
	errMsg  string

	subjects    []models.Subject
	assignments []models.Assignment
	notes       []models.Note
	tests       []models.Test
	done        map[int64]bool

	form *resourceForm
	chat chatModel

	confirmDelete     bool
	pendingDeleteID   int64
	pendingDeleteName string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
		done:     map[int64]bool{},
		chat:     newChatModel(ctx),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadSection()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.subjects = msg.items
		m.clampIdx(len(m.subjects))
		m.closeFormAfterSave()
		return m, nil
	case assignmentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.assignments = msg.items
		if msg.done != nil {
			m.done = msg.done
		}
		m.clampIdx(len(m.assignments))
		m.closeFormAfterSave()
		return m, nil
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.items
		m.clampIdx(len(m.notes))
		m.closeFormAfterSave()
		return m, nil
	case testsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.tests = msg.items
		m.clampIdx(len(m.tests))
		m.closeFormAfterSave()
		return m, nil
	case doneToggledMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.done = msg.done
		return m, nil
	case formSavedMsg:
		if m.form != nil {
			m.form.submitting = false
			if msg.err != nil {
				m.form.errMsg = humanizeServerUnavailableError(msg.err)
				return m, nil
			}
		}
		return m, nil
	case askDoneMsg, copiedMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.update(msg, m.services.AssistantService)
		return m, cmd
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.section == sectionAssistant {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.update(msg, m.services.AssistantService)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmDelete {
		switch keyMsg.String() {
		case "y":
			m.confirmDelete = false
			m.loading = true
			return m, m.cmdDelete(m.pendingDeleteID)
		case "n", "esc":
			m.confirmDelete = false
			m.pendingDeleteID = 0
			m.pendingDeleteName = ""
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.section == sectionAssistant {
		switch keyMsg.String() {
		case "left", "shift+tab":
			return m.switchSection(-1)
		case "right", "tab":
			return m.switchSection(+1)
		}
		var cmd tea.Cmd
		m.chat, cmd = m.chat.update(msg, m.services.AssistantService)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "L":
		m.logout = true
		return m, tea.Quit
	case "left", "shift+tab":
		return m.switchSection(-1)
	case "right", "tab":
		return m.switchSection(+1)
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < m.sectionLen()-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadSection()
	case "n":
		m.startCreate()
		if m.form != nil {
			return m, m.form.init()
		}
		return m, nil
	case "e":
		return m, m.startEdit()
	case "d":
		m.startDelete()
		return m, nil
	case " ":
		if m.section == sectionAssignments {
			if item, ok := currentItem(m.assignments, m.idx); ok {
				return m, m.cmdToggleDone(item.ID)
			}
		}
	}

	return m, nil
}

func (m *mainLoopModel) switchSection(delta int) (tea.Model, tea.Cmd) {
	next := (int(m.section) + delta + len(sectionNames)) % len(sectionNames)
	m.section = section(next)
	m.idx = 0
	m.status = ""
	m.errMsg = ""
	if m.section == sectionAssistant {
		m.loading = false
		return *m, m.chat.init()
	}
	m.loading = true
	return *m, m.cmdLoadSection()
}

func (m *mainLoopModel) clampIdx(length int) {
	if m.idx >= length {
		m.idx = length - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// closeFormAfterSave dismisses the form once a mutation came back with a
// refreshed list.
func (m *mainLoopModel) closeFormAfterSave() {
	if m.form != nil && m.form.submitting {
		m.form = nil
		m.status = "Saved"
	}
}

func (m mainLoopModel) sectionLen() int {
	switch m.section {
	case sectionSubjects:
		return len(m.subjects)
	case sectionAssignments:
		return len(m.assignments)
	case sectionNotes:
		return len(m.notes)
	case sectionTests:
		return len(m.tests)
	}
	return 0
}

func currentItem[T any](items []T, idx int) (T, bool) {
	var zero T
	if len(items) == 0 || idx < 0 || idx >= len(items) {
		return zero, false
	}
	return items[idx], true
}

func (m *mainLoopModel) startCreate() {
	switch m.section {
	case sectionSubjects:
		m.form = newSubjectForm(nil)
	case sectionAssignments:
		m.form = newAssignmentForm(nil)
	case sectionNotes:
		m.form = newNoteForm(nil)
	case sectionTests:
		m.form = newTestForm(nil)
	}
}

func (m *mainLoopModel) startEdit() tea.Cmd {
	switch m.section {
	case sectionSubjects:
		if item, ok := currentItem(m.subjects, m.idx); ok {
			m.form = newSubjectForm(&item)
		}
	case sectionAssignments:
		if item, ok := currentItem(m.assignments, m.idx); ok {
			m.form = newAssignmentForm(&item)
		}
	case sectionNotes:
		if item, ok := currentItem(m.notes, m.idx); ok {
			m.form = newNoteForm(&item)
		}
	case sectionTests:
		if item, ok := currentItem(m.tests, m.idx); ok {
			m.form = newTestForm(&item)
		}
	}
	if m.form == nil {
		return nil
	}
	return m.form.init()
}

func (m *mainLoopModel) startDelete() {
	switch m.section {
	case sectionSubjects:
		if item, ok := currentItem(m.subjects, m.idx); ok {
			m.confirmDelete = true
			m.pendingDeleteID = item.ID
			m.pendingDeleteName = item.Name
		}
	case sectionAssignments:
		if item, ok := currentItem(m.assignments, m.idx); ok {
			m.confirmDelete = true
			m.pendingDeleteID = item.ID
			m.pendingDeleteName = item.Title
		}
	case sectionNotes:
		if item, ok := currentItem(m.notes, m.idx); ok {
			m.confirmDelete = true
			m.pendingDeleteID = item.ID
			m.pendingDeleteName = item.Title
		}
	case sectionTests:
		if item, ok := currentItem(m.tests, m.idx); ok {
			m.confirmDelete = true
			m.pendingDeleteID = item.ID
			m.pendingDeleteName = item.Title
		}
	}
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.form = nil
			return m, nil
		case "enter":
			if m.form.areaFocused() {
				break // newline inside the content area
			}
			return m.submitForm()
		case "ctrl+s":
			return m.submitForm()
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		}
	}

	cmd := m.form.updateFocused(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	if err := m.form.validate(); err != "" {
		m.form.errMsg = err
		return m, nil
	}
	m.form.errMsg = ""
	m.form.submitting = true
	return m, m.cmdSaveForm(*m.form)
}

// ─────────────────────────── commands ───────────────────────────

func (m mainLoopModel) cmdLoadSection() tea.Cmd {
	ctx := m.ctx
	switch m.section {
	case sectionSubjects:
		svc := m.services.SubjectService
		return func() tea.Msg {
			items, err := svc.List(ctx)
			return subjectsLoadedMsg{items: items, err: err}
		}
	case sectionAssignments:
		svc := m.services.AssignmentService
		return func() tea.Msg {
			items, err := svc.List(ctx)
			if err != nil {
				return assignmentsLoadedMsg{err: err}
			}
			done, err := svc.DoneSet(ctx)
			return assignmentsLoadedMsg{items: items, done: done, err: err}
		}
	case sectionNotes:
		svc := m.services.NoteService
		return func() tea.Msg {
			items, err := svc.List(ctx)
			return notesLoadedMsg{items: items, err: err}
		}
	case sectionTests:
		svc := m.services.TestService
		return func() tea.Msg {
			items, err := svc.List(ctx)
			return testsLoadedMsg{items: items, err: err}
		}
	}
	return nil
}

func (m mainLoopModel) cmdSaveForm(form resourceForm) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		switch form.section {
		case sectionSubjects:
			subject := form.toSubject()
			var (
				items []models.Subject
				err   error
			)
			if form.editing {
				items, err = services.SubjectService.Update(ctx, subject)
			} else {
				items, err = services.SubjectService.Create(ctx, subject)
			}
			if err != nil {
				return formSavedMsg{err: err}
			}
			return subjectsLoadedMsg{items: items}
		case sectionAssignments:
			assignment, parseErr := form.toAssignment()
			if parseErr != nil {
				return formSavedMsg{err: parseErr}
			}
			var (
				items []models.Assignment
				err   error
			)
			if form.editing {
				items, err = services.AssignmentService.Update(ctx, assignment)
			} else {
				items, err = services.AssignmentService.Create(ctx, assignment)
			}
			if err != nil {
				return formSavedMsg{err: err}
			}
			done, err := services.AssignmentService.DoneSet(ctx)
			return assignmentsLoadedMsg{items: items, done: done, err: err}
		case sectionNotes:
			note, parseErr := form.toNote()
			if parseErr != nil {
				return formSavedMsg{err: parseErr}
			}
			var (
				items []models.Note
				err   error
			)
			if form.editing {
				items, err = services.NoteService.Update(ctx, note)
			} else {
				items, err = services.NoteService.Create(ctx, note)
			}
			if err != nil {
				return formSavedMsg{err: err}
			}
			return notesLoadedMsg{items: items}
		case sectionTests:
			test, parseErr := form.toTest()
			if parseErr != nil {
				return formSavedMsg{err: parseErr}
			}
			var (
				items []models.Test
				err   error
			)
			if form.editing {
				items, err = services.TestService.Update(ctx, test)
			} else {
				items, err = services.TestService.Create(ctx, test)
			}
			if err != nil {
				return formSavedMsg{err: err}
			}
			return testsLoadedMsg{items: items}
		}
		return nil
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	services := m.services
	switch m.section {
	case sectionSubjects:
		return func() tea.Msg {
			items, err := services.SubjectService.Delete(ctx, id)
			return subjectsLoadedMsg{items: items, err: err}
		}
	case sectionAssignments:
		return func() tea.Msg {
			items, err := services.AssignmentService.Delete(ctx, id)
			if err != nil {
				return assignmentsLoadedMsg{err: err}
			}
			done, err := services.AssignmentService.DoneSet(ctx)
			return assignmentsLoadedMsg{items: items, done: done, err: err}
		}
	case sectionNotes:
		return func() tea.Msg {
			items, err := services.NoteService.Delete(ctx, id)
			return notesLoadedMsg{items: items, err: err}
		}
	case sectionTests:
		return func() tea.Msg {
			items, err := services.TestService.Delete(ctx, id)
			return testsLoadedMsg{items: items, err: err}
		}
	}
	return nil
}

func (m mainLoopModel) cmdToggleDone(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AssignmentService
	return func() tea.Msg {
		if err := svc.ToggleDone(ctx, id); err != nil {
			return doneToggledMsg{err: err}
		}
		done, err := svc.DoneSet(ctx)
		return doneToggledMsg{done: done, err: err}
	}
}

// ─────────────────────────── view ───────────────────────────

func (m mainLoopModel) View() string {
	if m.form != nil {
		return m.form.view()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.section == sectionAssistant {
		b.WriteString(m.chat.view(m.services.AssistantService))
		return renderPage("STUDY SESH", strings.TrimRight(b.String(), "\n"),
			"enter: ask │ c: copy answer │ ctrl+r: new chat │ tab: section")
	}

	if m.loading {
		b.WriteString("Loading...\n")
	} else if m.sectionLen() == 0 {
		b.WriteString("Nothing here yet, press n to add\n")
	} else {
		b.WriteString(m.renderList())
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	body := renderPage("STUDY SESH", strings.TrimRight(b.String(), "\n"), m.hotKeys())

	if m.confirmDelete {
		body += "\n\n" + overlayBoxStyle.Render(
			fmt.Sprintf("Delete %q?\n\ny: yes    n: no", m.pendingDeleteName))
	}

	return body
}

func (m mainLoopModel) renderTabs() string {
	tabs := make([]string, 0, len(sectionNames))
	for i, name := range sectionNames {
		if section(i) == m.section {
			tabs = append(tabs, activeTabStyle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, " "+name+" ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m mainLoopModel) renderList() string {
	var b strings.Builder
	switch m.section {
	case sectionSubjects:
		for i, item := range m.subjects {
			b.WriteString(cursorFor(i, m.idx))
			b.WriteString(fmt.Sprintf("%-25s %s\n", fitText(item.Name, 25), fitText(item.Description, 40)))
		}
	case sectionAssignments:
		for i, item := range m.assignments {
			mark := "[ ]"
			if m.done[item.ID] {
				mark = "[x]"
			}
			b.WriteString(cursorFor(i, m.idx))
			b.WriteString(fmt.Sprintf("%s %-30s due %-12s %s\n",
				mark, fitText(item.Title, 30), valueOrDash(item.DueDate), item.Status))
		}
	case sectionNotes:
		for i, item := range m.notes {
			b.WriteString(cursorFor(i, m.idx))
			b.WriteString(fmt.Sprintf("%-25s %s\n", fitText(item.Title, 25), fitText(item.PlainText(), 40)))
		}
	case sectionTests:
		for i, item := range m.tests {
			score := "not graded"
			if item.Score != nil {
				score = fmt.Sprintf("%.1f", *item.Score)
			}
			b.WriteString(cursorFor(i, m.idx))
			b.WriteString(fmt.Sprintf("%-30s on %-12s score: %s\n",
				fitText(item.Title, 30), valueOrDash(item.TestDate), score))
		}
	}
	return b.String()
}

func (m mainLoopModel) hotKeys() string {
	base := "n: new │ e: edit │ d: delete │ r: refresh │ tab: section │ L: logout │ q: quit"
	if m.section == sectionAssignments {
		return "space: toggle done │ " + base
	}
	return base
}

func cursorFor(i, idx int) string {
	if i == idx {
		return "> "
	}
	return "  "
}
