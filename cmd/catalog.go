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
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the rotors and reflectors available",
	Long:  `List the rotors and reflectors of the historical catalog, or of the catalog given with --catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		listCatalog()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func listCatalog() {
	c := loadCatalog()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ROTOR\tWIRING\tNOTCHES")
	for _, name := range c.RotorNames() {
		t, _ := c.Rotor(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, t.Wiring(), t.Notches())
	}
	fmt.Fprintln(w, "\nREFLECTOR\tWIRING\t")
	for _, name := range c.ReflectorNames() {
		r, _ := c.Reflector(name)
		fmt.Fprintf(w, "%s\t%s\t\n", name, r.Wiring())
	}
	cobra.CheckErr(w.Flush())
}
