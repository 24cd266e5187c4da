package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/krysopath/pydis"
)

// OutputFormatter handles yaml vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Value outputs a single value.
func (f *OutputFormatter) Value(v interface{}) error {
	if f.Format == "text" {
		_, err := fmt.Fprintln(f.Writer, v)
		return err
	}
	return f.yaml(v)
}

// List outputs the list of values, one per line in the text format.
func (f *OutputFormatter) List(values []string) error {
	if f.Format == "text" {
		for _, v := range values {
			if _, err := fmt.Fprintln(f.Writer, v); err != nil {
				return err
			}
		}
		return nil
	}
	if values == nil {
		values = []string{}
	}
	return f.yaml(values)
}

// Fields outputs the record fields in their order.
func (f *OutputFormatter) Fields(fields []pydis.FieldValue) error {
	if f.Format == "text" {
		for _, field := range fields {
			if _, err := fmt.Fprintf(f.Writer, "%s\t%v\n", field.Name, field.Value); err != nil {
				return err
			}
		}
		return nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range fields {
		value := &yaml.Node{}
		if err := value.Encode(field.Value); err != nil {
			return err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: field.Name}, value)
	}
	return f.yaml(node)
}

func (f *OutputFormatter) yaml(v interface{}) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
