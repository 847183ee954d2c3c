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
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/enigma"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	logger         = zap.NewNop()
	GitCommit      string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	enigmaSuffix = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "enigma",
	Short:   "An Enigma cipher machine",
	Long:    `enigma enciphers and deciphers text on a simulated Enigma rotor machine.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	cobra.CheckErr(err)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate(fmt.Sprintf("enigma {{.Version}} (commit %s, built %s)\n", GitCommit, BuildDate))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the plaintext file to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted plaintext.")
	rootCmd.PersistentFlags().StringSliceP("rotors", "r", nil, "rotor types, left to right (eg. I,II,III)")
	rootCmd.PersistentFlags().StringP("reflector", "u", "", "reflector type (A, B or C)")
	rootCmd.PersistentFlags().String("rings", "", "ring settings as letters, left to right (eg. AAA)")
	rootCmd.PersistentFlags().StringP("positions", "s", "", "rotor start positions as letters, left to right (eg. AAA)")
	rootCmd.PersistentFlags().StringP("plugboard", "b", "", `plugboard pairs separated by spaces (eg. "AB CD")`)
	rootCmd.PersistentFlags().String("catalog", "", "YAML file describing additional rotors and reflectors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log machine events to stderr")
	for _, key := range []string{"rotors", "reflector", "rings", "positions", "plugboard", "catalog", "verbose"} {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma")
	}

	setDefaults()
	viper.SetEnvPrefix("ENIGMA")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if viper.GetBool("verbose") {
		l, err := zap.NewProduction()
		cobra.CheckErr(err)
		logger = l
	}
}

func setDefaults() {
	def := enigma.DefaultConfig()
	viper.SetDefault("rotors", def.Rotors)
	viper.SetDefault("reflector", def.Reflector)
	viper.SetDefault("rings", "")
	viper.SetDefault("positions", "")
	viper.SetDefault("plugboard", strings.Join(def.Plugboard, " "))
	viper.SetDefault("groups", 0)
}

// machineConfig collects the key setting from flags, environment and config
// file.  Letters are folded to upper case; rotor and reflector names are
// taken as given.
func machineConfig() (enigma.Config, error) {
	cfg := enigma.Config{
		Rotors:    splitList(viper.GetStringSlice("rotors")),
		Reflector: viper.GetString("reflector"),
	}

	var err error
	cfg.Rings, err = cryptors.ParseLetters(strings.ToUpper(viper.GetString("rings")))
	if err != nil {
		return cfg, fmt.Errorf("rings: %w", err)
	}
	cfg.Positions, err = cryptors.ParseLetters(strings.ToUpper(viper.GetString("positions")))
	if err != nil {
		return cfg, fmt.Errorf("positions: %w", err)
	}
	for _, pair := range splitList(viper.GetStringSlice("plugboard")) {
		cfg.Plugboard = append(cfg.Plugboard, strings.ToUpper(pair))
	}

	return cfg, nil
}

// splitList splits every element of list on commas and white space.  Values
// from the environment or a config file string arrive as a single element.
func splitList(list []string) []string {
	var out []string
	for _, e := range list {
		out = append(out, strings.FieldsFunc(e, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return out
}

func loadCatalog() *enigma.Catalog {
	path := viper.GetString("catalog")
	if len(path) == 0 {
		return enigma.Historical()
	}
	c, err := enigma.LoadCatalogFile(path)
	cobra.CheckErr(err)
	return c
}

// newMachine builds the machine described by the current settings.
func newMachine() *enigma.Machine {
	cfg, err := machineConfig()
	cobra.CheckErr(err)
	m, err := enigma.NewMachine(cfg, enigma.WithCatalog(loadCatalog()), enigma.WithLogger(logger))
	cobra.CheckErr(err)
	return m
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting data.  If input and/or output files names were given,
	then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encode bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 {
		if inputFileName == "-" {
			fin = os.Stdin
		} else {
			fin, err = os.Open(inputFileName)
			cobra.CheckErr(err)
		}
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" {
		fout = os.Stdout
	} else if encode {
		outputFileName = inputFileName + enigmaSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, enigmaSuffix) {
			outputFileName = strings.TrimSuffix(inputFileName, enigmaSuffix)
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	logger.Debug("files selected", zap.String("input", inputFileName), zap.String("output", outputFileName))
	return fin, fout
}

// checkError checks for error that are not io.EOF and io.ErrUnexpectedEOF and reports them.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}
