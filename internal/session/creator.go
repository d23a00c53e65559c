package session

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/utils"
)

// CreateState is a step of record creation.
type CreateState int

const (
	AwaitFilename CreateState = iota
	AwaitInitialScore
	Created
)

func (s CreateState) String() string {
	switch s {
	case AwaitFilename:
		return "AwaitFilename"
	case AwaitInitialScore:
		return "AwaitInitialScore"
	case Created:
		return "Created"
	default:
		return "CreateState(?)"
	}
}

// Creator walks AwaitFilename -> AwaitInitialScore -> Created. Rejected input
// leaves the state unchanged and returns an *InputError.
type Creator struct {
	store Store
	state CreateState
	name  string
	row   record.Row
}

// NewCreator returns a Creator waiting for a file name.
func NewCreator(store Store) *Creator {
	return &Creator{store: store}
}

// State returns the current step.
func (c *Creator) State() CreateState {
	return c.state
}

// Name returns the accepted file name, extension included, or "" before one
// has been accepted.
func (c *Creator) Name() string {
	return c.name
}

// Row returns the initial row once the record has been created.
func (c *Creator) Row() record.Row {
	return c.row
}

// Prompt returns the question for the current step.
func (c *Creator) Prompt() string {
	switch c.state {
	case AwaitFilename:
		return "New record file name (without " + record.Extension + "): "
	case AwaitInitialScore:
		return "Starting score (an integer greater than zero): "
	default:
		return ""
	}
}

// Submit feeds one line of input to the current step.
func (c *Creator) Submit(line string) error {
	switch c.state {
	case AwaitFilename:
		return c.submitName(line)
	case AwaitInitialScore:
		return c.submitScore(line)
	default:
		return ErrCreated
	}
}

// Start returns the session start for the created record.
func (c *Creator) Start() Start {
	return Start{Name: c.name, Score: c.row.Score}
}

func (c *Creator) submitName(line string) error {
	name := strings.TrimSpace(line)
	if name == "" {
		return invalid("", "file name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return invalid(name, "file name cannot contain a path")
	}

	file := name + record.Extension
	exists, err := c.store.Exists(file)
	if err != nil {
		return err
	}
	if exists {
		utils.LogDebug("rejected existing file name %s", file)
		return invalid(file, "file already exists, choose another name")
	}

	c.name = file
	c.state = AwaitInitialScore
	return nil
}

func (c *Creator) submitScore(line string) error {
	score, err := ParseInitialScore(line)
	if err != nil {
		return err
	}

	row, err := c.store.Create(c.name, score)
	if errors.Is(err, fs.ErrExist) {
		// Someone created the file between the two prompts.
		name := c.name
		c.name = ""
		c.state = AwaitFilename
		return invalid(name, "file already exists, choose another name")
	}
	if err != nil {
		return err
	}

	utils.LogDebug("created %s with score %d", c.name, score)
	c.row = row
	c.state = Created
	return nil
}
