package cityio

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdelivery/city"
)

// Case is the outcome of one city, numbered from 1 in input order.
// Counts holds the serviced counts per pizzeria in id order; Err is set
// instead when the city failed.
type Case struct {
	Number int
	Counts []city.Counts
	Err    error
}

// WriteText writes cases in the plain text format.
func WriteText(w io.Writer, cases []Case) error {
	bw := bufio.NewWriter(w)
	for _, c := range cases {
		fmt.Fprintf(bw, "Case %d:\n", c.Number)
		if c.Err != nil {
			fmt.Fprintln(bw, c.Err)
		}
		for _, n := range c.Counts {
			fmt.Fprintf(bw, "%d %d %d %d\n", n[city.North], n[city.East], n[city.South], n[city.West])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type yamlCase struct {
	Case      int            `yaml:"case"`
	Pizzerias []yamlPizzeria `yaml:"pizzerias,omitempty"`
	Error     string         `yaml:"error,omitempty"`
}

type yamlPizzeria struct {
	ID    int `yaml:"id"`
	North int `yaml:"north"`
	East  int `yaml:"east"`
	South int `yaml:"south"`
	West  int `yaml:"west"`
}

// WriteYAML writes cases as a YAML sequence.
func WriteYAML(w io.Writer, cases []Case) error {
	doc := make([]yamlCase, 0, len(cases))
	for _, c := range cases {
		yc := yamlCase{Case: c.Number}
		if c.Err != nil {
			yc.Error = c.Err.Error()
		}
		for i, n := range c.Counts {
			yc.Pizzerias = append(yc.Pizzerias, yamlPizzeria{
				ID:    i + 1,
				North: n[city.North],
				East:  n[city.East],
				South: n[city.South],
				West:  n[city.West],
			})
		}
		doc = append(doc, yc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cityio: encode yaml: %w", err)
	}
	return enc.Close()
}
