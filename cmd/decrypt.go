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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/enigma"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext]",
	Short: "Decrypt Enigma ciphertext.",
	Long: `Decrypt ciphertext on the Enigma machine described by the flags, environment and config file.
If the input is a PEM block written by "encrypt --usePem" the start positions are taken from it,
and the rotors, reflector and rings it names must match the configured machine.`,
	PreRun: bindGroups,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:        "decode [ciphertext]",
	Short:      "Decode Enigma ciphertext.",
	Long:       `[DEPRECATED] Decode ciphertext on the Enigma machine.`,
	Deprecated: "use \"decrypt\" instead.",
	PreRun:     bindGroups,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(decodeCmd)
	for _, c := range []*cobra.Command{decryptCmd, decodeCmd} {
		c.Flags().IntP("groups", "g", 0, "split the plaintext into groups of this many letters (0 for none)")
	}
}

// applyEnvelope checks the Rotors, Reflector and Rings headers of a PEM block
// against the configured machine and turns the rotors to the Start header.
func applyEnvelope(m *enigma.Machine, headers map[string]string) error {
	cfg := m.Config()
	want := map[string]string{
		"Rotors":    strings.Join(cfg.Rotors, ","),
		"Reflector": cfg.Reflector,
		"Rings":     ringLetters(cfg),
	}
	for _, key := range []string{"Rotors", "Reflector", "Rings"} {
		got, ok := headers[key]
		if !ok {
			continue
		}
		if key == "Rings" {
			got = strings.ToUpper(got)
		}
		if got != want[key] {
			return fmt.Errorf("%w: message was enciphered with %s %s, machine has %s",
				enigma.ErrInvalidConfiguration, key, got, want[key])
		}
	}

	start, ok := headers["Start"]
	if !ok {
		return nil
	}
	positions, err := cryptors.ParseLetters(strings.ToUpper(start))
	if err != nil {
		return fmt.Errorf("start header: %w", err)
	}
	return m.SetPositions(positions)
}

func decrypt(args []string) {
	m := newMachine()
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()

	var decIn io.Reader
	if len(args) > 0 {
		decIn = messageReader(args, fin)
	} else {
		bRdr := bufio.NewReader(fin)
		b, err := bRdr.Peek(5)
		checkError(err)
		if string(b) == "-----" {
			pRdr, blck := pem.FromPem(bRdr)
			if blck.Type != pemType {
				cobra.CheckErr(fmt.Sprintf("Unexpected PEM block type: [%s]", blck.Type))
			}
			cobra.CheckErr(applyEnvelope(m, blck.Headers))
			decIn = pRdr
		} else {
			decIn = lines.CombineLines(bRdr)
		}
	}

	start := m.PositionLetters()
	_, err := io.Copy(fout, m.Pipe(decIn, viper.GetInt("groups")))
	if err == nil {
		_, err = fmt.Fprintln(fout)
	}
	checkError(err)
	logger.Info("message deciphered",
		zap.String("start", start),
		zap.String("end", m.PositionLetters()))
}
