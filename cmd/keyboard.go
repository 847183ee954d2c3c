/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bgallie/enigma/enigma"
)

// keyboardCmd represents the keyboard command
var keyboardCmd = &cobra.Command{
	Use:   "keyboard",
	Short: "Type on the Enigma one key at a time",
	Long: `Type on the Enigma one key at a time.  After each key press the lit lamp and the
letters showing in the rotor windows are displayed.  Enter starts a new line, "." turns the
rotors back to their start positions, Esc or Ctrl-C leaves.`,
	Run: func(cmd *cobra.Command, args []string) {
		keyboard()
	},
}

func init() {
	rootCmd.AddCommand(keyboardCmd)
}

// lampboard keeps the lamps lit on the current line.
type lampboard struct {
	lamps strings.Builder
	count int
}

func (l *lampboard) light(c rune) {
	if l.count > 0 && l.count%5 == 0 {
		l.lamps.WriteByte(' ')
	}
	l.lamps.WriteRune(c)
	l.count++
}

func (l *lampboard) clear() {
	l.lamps.Reset()
	l.count = 0
}

func (l *lampboard) render(m *enigma.Machine) string {
	return fmt.Sprintf("\r\033[K[%s] %s", m.PositionLetters(), l.lamps.String())
}

func keyboard() {
	m := newMachine()
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		cobra.CheckErr("keyboard needs a terminal on standard input; use encrypt instead.")
	}

	oldState, err := term.MakeRaw(fd)
	cobra.CheckErr(err)
	defer term.Restore(fd, oldState)

	var lb lampboard
	fmt.Fprint(os.Stdout, lb.render(m))
	key := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(key); err != nil {
			break
		}
		switch k := key[0]; {
		case k == 3 || k == 4 || k == 27: // Ctrl-C, Ctrl-D, Esc
			fmt.Fprint(os.Stdout, "\r\n")
			return
		case k == '\r' || k == '\n':
			fmt.Fprint(os.Stdout, "\r\n")
			lb.clear()
		case k == '.':
			if err := m.Reset(); err != nil {
				fmt.Fprintf(os.Stdout, "\r\n%v\r\n", err)
			}
			fmt.Fprint(os.Stdout, "\r\n")
			lb.clear()
		default:
			typed := enigma.Normalize(string(rune(k)))
			if len(typed) == 0 {
				continue
			}
			lamp, err := m.EncodeChar(rune(typed[0]))
			if err != nil {
				continue
			}
			lb.light(lamp)
		}
		fmt.Fprint(os.Stdout, lb.render(m))
	}
}
