package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap горячие клавиши главного экрана
type keyMap struct {
	TogglePlay  key.Binding
	Next        key.Binding
	Previous    key.Binding
	SeekForward key.Binding
	SeekBack    key.Binding
	Mute        key.Binding
	Select      key.Binding
	SwitchTab   key.Binding
	Search      key.Binding
	LeaveSearch key.Binding
	Up          key.Binding
	Down        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		TogglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "пауза/воспроизведение"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "следующая"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "предыдущая"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "вперед"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "назад"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "звук"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "выбрать"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "вкладка"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "поиск"),
		),
		LeaveSearch: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "к списку"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "вниз"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "справка"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp реализует help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePlay, k.Next, k.Previous, k.Search, k.Help, k.Quit}
}

// FullHelp реализует help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePlay, k.Next, k.Previous, k.Mute},
		{k.SeekBack, k.SeekForward, k.Up, k.Down},
		{k.Select, k.SwitchTab, k.Search, k.LeaveSearch},
		{k.Help, k.Quit},
	}
}
