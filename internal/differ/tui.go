// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4")).Bold(true)
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4"))
)

// SelectPolicyVersions lets the user pick two policy versions. It returns
// nil if the user quit without choosing.
func SelectPolicyVersions(items []types.CoreNetworkPolicyVersion, in io.Reader, out io.Writer) ([]types.CoreNetworkPolicyVersion, error) {
	p := tea.NewProgram(newModel(items), tea.WithInput(in), tea.WithOutput(out))
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("version picker: %w", err)
	}
	return m.(model).selected, nil
}

type model struct {
	items     []types.CoreNetworkPolicyVersion
	cursor    int
	selected  []types.CoreNetworkPolicyVersion
	filter    textinput.Model
	filtering bool
}

func newModel(items []types.CoreNetworkPolicyVersion) model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 256
	return model{items: items, filter: ti}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	visible := m.visible()
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.selected = nil
		return m, tea.Quit
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case " ":
		if len(visible) == 0 {
			break
		}
		current := visible[m.cursor]
		if i := indexOf(m.selected, current); i >= 0 {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
		} else if len(m.selected) < 2 {
			m.selected = append(m.selected, current)
		}
	case "enter":
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

// visible returns the items matching the filter text. Matching is a case
// insensitive substring test on the version id, alias, state and description.
func (m model) visible() []types.CoreNetworkPolicyVersion {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		return m.items
	}

	var out []types.CoreNetworkPolicyVersion
	for _, v := range m.items {
		hay := strings.ToLower(strings.Join([]string{
			strconv.Itoa(int(awsv2.ToInt32(v.PolicyVersionId))),
			string(v.Alias),
			string(v.ChangeSetState),
			awsv2.ToString(v.Description),
		}, " "))
		if strings.Contains(hay, needle) {
			out = append(out, v)
		}
	}
	return out
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Select two policy versions:\n\n")
	for i, v := range m.visible() {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if indexOf(m.selected, v) >= 0 {
			mark = "x"
		}

		created := "-"
		if v.CreatedAt != nil {
			created = humanize.Time(*v.CreatedAt)
		}
		line := fmt.Sprintf("%s [%s] %4d %-8s %-22s %-16s %s", cursor, mark,
			awsv2.ToInt32(v.PolicyVersionId), v.Alias, v.ChangeSetState, created,
			awsv2.ToString(v.Description))
		switch {
		case m.cursor == i:
			line = cursorStyle.Render(line)
		case v.Alias == types.CoreNetworkPolicyAliasLive:
			line = liveStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(promptStyle.Render(m.filter.View()) + "\n")
	}
	b.WriteString("SPACE: toggle, /: filter, ENTER: go, Q/ESCAPE: quit\n")
	return b.String()
}

func indexOf(versions []types.CoreNetworkPolicyVersion, version types.CoreNetworkPolicyVersion) int {
	for i, v := range versions {
		if awsv2.ToInt32(v.PolicyVersionId) == awsv2.ToInt32(version.PolicyVersionId) {
			return i
		}
	}
	return -1
}
