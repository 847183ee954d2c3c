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

const (
	pemType = "ENIGMA Enciphered Message"
)

var (
	usePem     bool
	splitLines bool
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [message]",
	Short: "Encrypt plaintext on the Enigma",
	Long: `Encrypt plaintext on the Enigma machine described by the flags, environment and config file.
The message is taken from the arguments if any are given, otherwise from the input file.
Letters are folded to upper case; everything else is dropped.`,
	PreRun: bindGroups,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:        "encode [message]",
	Short:      "Encode plaintext on the Enigma",
	Long:       `[DEPRECATED] Encode plaintext on the Enigma machine.`,
	Deprecated: "use \"encrypt\" instead.",
	PreRun:     bindGroups,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(encodeCmd)
	for _, c := range []*cobra.Command{encryptCmd, encodeCmd} {
		c.Flags().BoolVarP(&usePem, "usePem", "p", false, "wrap the ciphertext in a PEM block carrying the key and start positions.")
		c.Flags().BoolVarP(&splitLines, "lines", "l", false, "split the ciphertext into lines")
		c.Flags().IntP("groups", "g", 0, "split the ciphertext into groups of this many letters (0 for none)")
	}
}

// bindGroups binds the groups flag of the running command to viper.
func bindGroups(cmd *cobra.Command, args []string) {
	cobra.CheckErr(viper.BindPFlag("groups", cmd.Flags().Lookup("groups")))
}

// messageReader returns the message given on the command line, or the input file.
func messageReader(args []string, fin io.Reader) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " "))
	}
	return fin
}

// ringLetters returns the ring settings of cfg as letters, all A when unset.
func ringLetters(cfg enigma.Config) string {
	if len(cfg.Rings) == 0 {
		return strings.Repeat("A", len(cfg.Rotors))
	}
	return cryptors.FormatLetters(cfg.Rings)
}

// envelopeHeaders describes the machine a PEM block was enciphered on.
func envelopeHeaders(cfg enigma.Config, start string) map[string]string {
	return map[string]string{
		"Rotors":    strings.Join(cfg.Rotors, ","),
		"Reflector": cfg.Reflector,
		"Rings":     ringLetters(cfg),
		"Start":     start,
	}
}

func encrypt(args []string) {
	m := newMachine()
	start := m.PositionLetters()
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	encOut := m.Pipe(messageReader(args, fin), viper.GetInt("groups"))

	var err error
	if usePem {
		var blck pem.Block
		blck.Type = pemType
		blck.Headers = envelopeHeaders(m.Config(), start)
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encOut), blck))
	} else if splitLines {
		_, err = io.Copy(fout, lines.SplitToLines(encOut))
	} else {
		_, err = io.Copy(fout, encOut)
		if err == nil {
			_, err = fmt.Fprintln(fout)
		}
	}
	checkError(err)
	logger.Info("message enciphered",
		zap.String("start", start),
		zap.String("end", m.PositionLetters()))
}
