package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
)

// Catalog is a Store that can also list its record files.
type Catalog interface {
	Store
	List() ([]string, error)
}

// Console runs the whole logger flow over plain lines of text: the 1/2 menu,
// creating or resuming a record, then the work loop until "q". End of input
// counts as quitting.
type Console struct {
	store Catalog
	in    *bufio.Reader
	out   io.Writer
}

// NewConsole returns a Console reading lines from in and writing to out.
func NewConsole(store Catalog, in io.Reader, out io.Writer) *Console {
	return &Console{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run drives the console until the user quits. The returned error is always
// fatal; validation failures are reported inline and asked again.
func (c *Console) Run() error {
	err := c.run()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
		return nil
	}
	return err
}

func (c *Console) run() error {
	fmt.Fprintln(c.out, "////////// Score logger //////////")
	fmt.Fprintln(c.out, "1. Create a new record")
	fmt.Fprintln(c.out, "2. Continue a previous record")

	start, err := c.chooseStart()
	if err != nil {
		return err
	}
	return c.work(New(c.store, start))
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err == io.EOF {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) reject(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

func (c *Console) chooseStart() (Start, error) {
	for {
		line, err := c.ask("Choose 1 or 2: ")
		if err != nil {
			return Start{}, err
		}
		switch strings.TrimSpace(line) {
		case "1":
			return c.create()
		case "2":
			start, ok, err := c.resume()
			if err != nil || ok {
				return start, err
			}
			fmt.Fprintln(c.out, "Back to the main menu...")
		default:
			c.reject(invalid("", "please enter 1 or 2"))
		}
	}
}

func (c *Console) create() (Start, error) {
	cr := NewCreator(c.store)
	for cr.State() != Created {
		line, err := c.ask(cr.Prompt())
		if err != nil {
			return Start{}, err
		}
		if err := cr.Submit(line); err != nil {
			if !IsInputError(err) {
				return Start{}, err
			}
			c.reject(err)
		}
	}
	fmt.Fprintf(c.out, "Created record file: %s\n", cr.Name())
	return cr.Start(), nil
}

// resume returns ok=false when there is nothing to resume or the user backs out.
func (c *Console) resume() (Start, bool, error) {
	files, err := c.store.List()
	if err != nil {
		return Start{}, false, err
	}
	sel := NewSelector(c.store, files)
	if sel.Empty() {
		fmt.Fprintln(c.out, "No record files found.")
		return Start{}, false, nil
	}

	fmt.Fprintln(c.out, "Record files:")
	for i, f := range files {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, f)
	}

	for {
		line, err := c.ask("File number to open (or q to go back): ")
		if err != nil {
			return Start{}, false, err
		}
		choice, err := ParseChoice(line, len(files))
		if err != nil {
			c.reject(err)
			continue
		}
		switch ch := choice.(type) {
		case Quit:
			return Start{}, false, nil
		case Pick:
			start, err := sel.Resume(ch)
			if IsInputError(err) {
				c.reject(err)
				continue
			}
			if err != nil {
				return Start{}, false, err
			}
			return start, true, nil
		}
	}
}

func (c *Console) work(s *Session) error {
	fmt.Fprintf(c.out, "\nWork mode. Enter a score change (%s), or q to quit.\n", DeltaList())
	fmt.Fprintf(c.out, "Current score: %d\n", s.Score())

	for {
		line, err := c.ask("Score change: ")
		if err != nil {
			return err
		}
		in, err := ParseInput(line)
		if err != nil {
			c.reject(err)
			continue
		}
		switch in := in.(type) {
		case Quit:
			fmt.Fprintln(c.out, "Leaving work mode.")
			return nil
		case Change:
			row, err := s.Apply(in.Delta)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Recorded: time %s, new score %d\n", record.FormatTime(row.Time), row.Score)
		}
	}
}
