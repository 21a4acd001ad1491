package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	FocusNext    key.Binding
	FocusPrev    key.Binding
	ToggleDevice key.Binding
	CycleSchema  key.Binding
	Export       key.Binding
	CopySnippet  key.Binding
	Clear        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		ToggleDevice: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "desktop/mobile"),
		),
		CycleSchema: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "schema"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "export CSV"),
		),
		CopySnippet: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "snippet text"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear inputs"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.ToggleDevice, k.CycleSchema, k.Export, k.CopySnippet, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.ToggleDevice, k.CycleSchema},
		{k.Export, k.CopySnippet, k.Clear, k.Quit},
	}
}
