package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func passthrough(line []rune, st LineState, m *Mode) ([]Span, LineState) {
	return nil, st
}

func TestRegister_ForPath(t *testing.T) {
	m := &Mode{Name: "reg-test-alpha", Extensions: []string{"rta", "RTB"}, Colorize: passthrough}
	Register(m)

	require.Same(t, m, ForPath("prog.rta"))
	require.Same(t, m, ForPath("dir/sub/prog.rta"))
	require.Same(t, m, ForPath("PROG.RTA"), "extension match is case-insensitive")
	require.Same(t, m, ForPath("prog.rtb"), "claimed extensions are folded too")
	require.Nil(t, ForPath("prog.txt"))
	require.Nil(t, ForPath("noext"))
	require.Nil(t, ForPath(""))
}

func TestRegister_ByName(t *testing.T) {
	m := &Mode{Name: "reg-test-beta", Colorize: passthrough}
	Register(m)

	require.Same(t, m, ByName("reg-test-beta"))
	require.Nil(t, ByName("no-such-mode"))
}

func TestRegister_DuplicateNamePanics(t *testing.T) {
	Register(&Mode{Name: "reg-test-dup", Colorize: passthrough})
	require.Panics(t, func() {
		Register(&Mode{Name: "reg-test-dup", Colorize: passthrough})
	})
}

func TestModes_ReturnsCopy(t *testing.T) {
	m := &Mode{Name: "reg-test-gamma", Colorize: passthrough}
	Register(m)

	all := Modes()
	require.Contains(t, all, m)

	// Mutating the returned slice must not affect the registry.
	for i := range all {
		all[i] = nil
	}
	require.Contains(t, Modes(), m)
}
