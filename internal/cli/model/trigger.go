// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/service"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// KeyPresser feeds key presses to a running capture session.
type KeyPresser interface {
	Press(keyCode int, descriptor string) error
}

// KeyMapEditor exposes the key map being edited.
type KeyMapEditor interface {
	KeyMap() (entity.KeyMap, bool)
}

// TriggerModelConfig holds configuration for the trigger model.
type TriggerModelConfig struct {
	ViewModel *usecase.TriggerViewModel
	Editor    KeyMapEditor
	Capture   KeyPresser
	Strings   port.ResourceProvider
	Title     string
	// Descriptor is the input device keys pressed while recording come from.
	// Empty means the phone itself.
	Descriptor string
	Save       func(ctx context.Context) error
}

// TriggerModel is the Bubble Tea model for the interactive trigger editor.
type TriggerModel struct {
	// UI components
	help       help.Model
	keys       styles.TriggerKeyMap
	dialogKeys styles.DialogKeyMap
	spinner    spinner.Model
	confirm    *styles.ConfirmModel
	renderer   *styles.TriggerRenderer
	theme      *styles.Theme
	resources  port.ResourceProvider

	// State
	state         service.TriggerState
	loaded        bool
	selectedIdx   int
	deviceIdx     int
	saved         entity.KeyMap
	err           error
	statusMessage string
	title         string
	descriptor    string

	// Dependencies
	ctx     context.Context
	vm      *usecase.TriggerViewModel
	editor  KeyMapEditor
	capture KeyPresser
	save    func(ctx context.Context) error
	states  <-chan service.TriggerState
}

// NewTriggerModel creates a new trigger editor model. The screen state is
// watched until ctx is done.
func NewTriggerModel(ctx context.Context, theme *styles.Theme, cfg TriggerModelConfig) TriggerModel {
	saved, _ := cfg.Editor.KeyMap()

	return TriggerModel{
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultTriggerKeyMap(),
		dialogKeys: styles.DefaultDialogKeyMap(),
		spinner:    styles.NewRecordingSpinner(theme),
		renderer:   styles.NewTriggerRenderer(theme, cfg.Strings),
		theme:      theme,
		resources:  cfg.Strings,
		saved:      saved,
		title:      cfg.Title,
		descriptor: cfg.Descriptor,
		ctx:        ctx,
		vm:         cfg.ViewModel,
		editor:     cfg.Editor,
		capture:    cfg.Capture,
		save:       cfg.Save,
		states:     cfg.ViewModel.Watch(ctx),
	}
}

// stateMsg carries a new screen state.
type stateMsg struct {
	state service.TriggerState
}

// statesClosedMsg is sent once the state channel is closed.
type statesClosedMsg struct{}

// savedMsg is sent after the key map was saved.
type savedMsg struct {
	keyMap entity.KeyMap
	err    error
}

// Init implements tea.Model.
func (m TriggerModel) Init() tea.Cmd {
	return tea.Batch(m.waitForState(), m.spinner.Tick)
}

func (m TriggerModel) waitForState() tea.Cmd {
	states := m.states
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return statesClosedMsg{}
		}
		return stateMsg{state: state}
	}
}

// Update implements tea.Model.
func (m TriggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case stateMsg:
		m.state = msg.state
		m.loaded = true
		m.clampSelection()
		return m, m.waitForState()

	case statesClosedMsg:
		return m, tea.Quit

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.saved = msg.keyMap
		m.statusMessage = "Key map saved"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m TriggerModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		discard := m.confirm.Result()
		m.confirm = nil
		if discard {
			return m, tea.Quit
		}
	}
	return m, cmd
}

func (m TriggerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.RecordState.IsCountingDown() {
		return m.handleRecordingKey(msg)
	}
	if dialog := m.vm.Dialog(); dialog.Kind != usecase.DialogNone {
		return m.handleDialogKey(msg, dialog)
	}

	m.statusMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.Dirty() {
			confirm := styles.NewConfirm(m.theme, "Discard unsaved changes?")
			confirm.Detail = m.title
			m.confirm = &confirm
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.state.Keys)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.selectedIdx > 0 {
			m.err = m.vm.OnMoveTriggerKey(m.selectedIdx, m.selectedIdx-1)
			if m.err == nil {
				m.selectedIdx--
			}
		}

	case key.Matches(msg, m.keys.MoveDown):
		if m.selectedIdx < len(m.state.Keys)-1 {
			m.err = m.vm.OnMoveTriggerKey(m.selectedIdx, m.selectedIdx+1)
			if m.err == nil {
				m.selectedIdx++
			}
		}

	case key.Matches(msg, m.keys.Record):
		m.err = m.vm.OnRecordTriggerClick(m.ctx)

	case key.Matches(msg, m.keys.Parallel):
		m.err = m.vm.OnSelectParallelTriggerMode()

	case key.Matches(msg, m.keys.Sequence):
		m.err = m.vm.OnSelectSequenceTriggerMode()

	case key.Matches(msg, m.keys.ClickType):
		if len(m.state.AvailableClickTypes) == 0 {
			m.statusMessage = "Add a trigger key first"
			break
		}
		m.err = m.vm.OnSelectClickType(nextClickType(m.state.AvailableClickTypes, m.state.ClickType))

	case key.Matches(msg, m.keys.KeyClick):
		m.cycleKeyClickType()

	case key.Matches(msg, m.keys.DontRemap):
		m.toggleDontRemap()

	case key.Matches(msg, m.keys.Device):
		if item, ok := m.selectedKey(); ok {
			m.err = m.vm.OnChooseTriggerKeyDeviceClick(m.ctx, item.UID)
			dialog := m.vm.Dialog()
			m.deviceIdx = max(0, slices.Index(dialog.Devices, dialog.SelectedDevice))
		}

	case key.Matches(msg, m.keys.Remove):
		if item, ok := m.selectedKey(); ok {
			m.err = m.vm.OnRemoveTriggerKeyClick(item.UID)
		}

	case key.Matches(msg, m.keys.Fix):
		m.fixError(msg.String())

	case key.Matches(msg, m.keys.Dismiss):
		if text := m.snackbarText(m.vm.OnSnackbarClick()); text != "" {
			m.statusMessage = text
		}

	case key.Matches(msg, m.keys.Save):
		return m, m.saveKeyMap()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m TriggerModel) handleRecordingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
		m.err = m.vm.OnRecordTriggerClick(m.ctx)
		return m, nil
	}

	keyCode, ok := TerminalKeyCode(msg.String())
	if !ok {
		m.statusMessage = fmt.Sprintf("%q has no Android key", msg.String())
		return m, nil
	}
	if err := m.capture.Press(keyCode, m.descriptor); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Int("key_code", keyCode).Msg("key press dropped")
		m.err = err
		return m, nil
	}
	m.err = nil
	m.statusMessage = "Pressed " + entity.KeyCodeToString(keyCode)
	return m, nil
}

func (m TriggerModel) handleDialogKey(msg tea.KeyMsg, dialog usecase.Dialog) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.dialogKeys.Cancel):
		m.vm.OnDismissDialog()

	case key.Matches(msg, m.dialogKeys.Confirm):
		actionErr, err := m.vm.OnConfirmDialog()
		m.err = err
		if actionErr != nil {
			m.statusMessage = "To fix: " + actionErr.Error()
		}

	case dialog.Kind == usecase.DialogChooseTriggerKeyDevice && key.Matches(msg, m.dialogKeys.Up):
		if m.deviceIdx > 0 {
			m.deviceIdx--
			m.vm.OnSelectTriggerKeyDevice(dialog.Devices[m.deviceIdx])
		}

	case dialog.Kind == usecase.DialogChooseTriggerKeyDevice && key.Matches(msg, m.dialogKeys.Down):
		if m.deviceIdx < len(dialog.Devices)-1 {
			m.deviceIdx++
			m.vm.OnSelectTriggerKeyDevice(dialog.Devices[m.deviceIdx])
		}

	case dialog.Kind == usecase.DialogDndAccessExplanation && key.Matches(msg, m.dialogKeys.Never):
		m.err = m.vm.OnNeverShowDndAccessErrorClick(m.ctx)
	}

	return m, nil
}

func (m *TriggerModel) cycleKeyClickType() {
	item, ok := m.selectedKey()
	if !ok {
		return
	}
	m.vm.OnLaunchTriggerKeyOptions(item.UID)
	opts, err := m.vm.TriggerKeyOptions()
	if err != nil {
		m.err = err
		return
	}
	if !opts.ShowClickTypeButtons {
		m.statusMessage = "Keys only have their own click type in sequence mode"
		return
	}
	all := []entity.ClickType{entity.ClickTypeShortPress, entity.ClickTypeLongPress, entity.ClickTypeDoublePress}
	m.err = m.vm.OnSelectKeyClickType(nextClickType(all, &opts.ClickType))
}

func (m *TriggerModel) toggleDontRemap() {
	item, ok := m.selectedKey()
	if !ok {
		return
	}
	m.vm.OnLaunchTriggerKeyOptions(item.UID)
	opts, err := m.vm.TriggerKeyOptions()
	if err != nil {
		m.err = err
		return
	}
	m.err = m.vm.OnDoNotRemapKeyCheckedChange(!opts.IsDoNotRemapChecked)
}

func (m *TriggerModel) fixError(digit string) {
	i := int(digit[0] - '1')
	if i < 0 || i >= len(m.state.Errors) {
		return
	}
	if actionErr := m.vm.OnFixTriggerErrorClick(m.state.Errors[i]); actionErr != nil {
		m.statusMessage = "To fix: " + actionErr.Error()
	}
}

func (m TriggerModel) saveKeyMap() tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		if err := m.save(m.ctx); err != nil {
			log.Error().Err(err).Msg("failed to save key map")
			return savedMsg{err: err}
		}
		km, _ := m.editor.KeyMap()
		return savedMsg{keyMap: km}
	}
}

// Dirty reports whether the key map changed since it was loaded or saved.
func (m TriggerModel) Dirty() bool {
	current, ok := m.editor.KeyMap()
	return ok && !reflect.DeepEqual(current, m.saved)
}

func (m TriggerModel) selectedKey() (service.TriggerKeyItem, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.state.Keys) {
		return service.TriggerKeyItem{}, false
	}
	return m.state.Keys[m.selectedIdx], true
}

func (m *TriggerModel) clampSelection() {
	if m.selectedIdx >= len(m.state.Keys) {
		m.selectedIdx = len(m.state.Keys) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}

func (m TriggerModel) snackbarText(s usecase.Snackbar) string {
	switch s {
	case usecase.SnackbarAccessibilityServiceCrashed:
		return m.resources.GetString(port.StringAccessibilityServiceCrashed)
	case usecase.SnackbarAccessibilityServiceDisabled:
		return m.resources.GetString(port.StringAccessibilityServiceDisabled)
	default:
		return ""
	}
}

// nextClickType returns the entry after current in types, wrapping around.
func nextClickType(types []entity.ClickType, current *entity.ClickType) entity.ClickType {
	if current == nil {
		return types[0]
	}
	i := slices.Index(types, *current)
	return types[(i+1)%len(types)]
}

// View implements tea.Model.
func (m TriggerModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	switch dialog := m.vm.Dialog(); dialog.Kind {
	case usecase.DialogChooseTriggerKeyDevice:
		return m.renderer.RenderDevicePicker(dialog.Devices, dialog.SelectedDevice) + "\n\n" + m.help.View(m.dialogKeys) + "\n"
	case usecase.DialogDndAccessExplanation:
		return m.renderer.RenderDndExplanation() + "\n\n" + m.help.View(m.dialogKeys) + "\n"
	}

	t := m.theme
	var b strings.Builder

	if !m.loaded {
		b.WriteString(t.Subtle.Render("Loading trigger…"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderer.RenderState(m.title, m.state, m.selectedIdx))
	b.WriteString("\n")

	if m.state.RecordState.IsCountingDown() {
		b.WriteString("  " + m.spinner.View() + " " + m.renderer.RenderRecordButton(m.state.RecordState) + "\n")
		b.WriteString(t.Subtle.Render("  Press the keys to add. esc stops recording."))
	} else {
		b.WriteString("  " + m.renderer.RenderRecordButton(m.state.RecordState))
		if m.Dirty() {
			b.WriteString("  " + t.MutedBadge("unsaved"))
		}
	}
	b.WriteString("\n\n")

	if text := m.snackbarText(m.vm.Snackbar()); text != "" {
		b.WriteString(t.WarningStyle.Render(fmt.Sprintf("%s %s", styles.IconWarning, text)))
		b.WriteString(t.Subtle.Render("  (enter)"))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
