package cmd

import (
	"fmt"

	"pckbd/layouts"
)

// Layouts lists the built-in layouts with their physical keyboard kind.
type Layouts struct{}

func (l *Layouts) Run() error {
	for _, name := range layouts.Names() {
		layout, err := layouts.ByName(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %s\n", name, layout.Physical())
	}
	return nil
}
