// Package jobfile loads job descriptors from the YAML jobfile.
// The loader is deliberately dumb: it reads, decodes and validates
// descriptors, and leaves schedule compilation to the scheduling core.
package jobfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrJobfileExists is returned by WriteTemplate when the target
	// file already exists.
	ErrJobfileExists = errors.New("jobfile already exists")
)

// Descriptor is one job entry of the jobfile. Descriptors are plain
// data; whether the schedule expression actually compiles is decided
// at job construction time.
type Descriptor struct {
	// Name labels the job in logs and status output.
	Name string `yaml:"name"`

	// Command is the full command line to execute.
	Command string `yaml:"command"`

	// Schedule is the cron expression deciding when the job runs.
	Schedule string `yaml:"schedule"`
}

type jobfileDoc struct {
	Jobs []Descriptor `yaml:"jobs"`
}

// Load reads and decodes the jobfile at path. Decoding is strict:
// unknown keys are rejected, as are entries missing name, command or
// schedule. Descriptor order follows file order, which in turn decides
// enqueue order for jobs due at the same instant.
func Load(fs afero.Fs, path string) ([]Descriptor, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes jobfile content. See Load.
func Parse(data []byte) ([]Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc jobfileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty jobfile holds zero jobs.
			return nil, nil
		}
		return nil, fmt.Errorf("malformed jobfile: %w", err)
	}

	for i, d := range doc.Jobs {
		if d.Name == "" {
			return nil, fmt.Errorf("jobfile entry %d: name is required", i+1)
		}
		if d.Command == "" {
			return nil, fmt.Errorf("jobfile entry %d (%s): command is required", i+1, d.Name)
		}
		if d.Schedule == "" {
			return nil, fmt.Errorf("jobfile entry %d (%s): schedule is required", i+1, d.Name)
		}
	}
	return doc.Jobs, nil
}

// templateContent is the starter jobfile written by WriteTemplate.
// The seeded jobs touch marker files so a fresh install visibly works.
const templateContent = `# xcrond jobfile
#
# Each entry needs a name, a command line and a cron schedule.
# Standard 5-field expressions, seconds-first 6-field expressions and
# aliases like @always, @hourly or @daily are accepted.
jobs:
  - name: Job 1
    command: /usr/bin/touch /tmp/1
    schedule: "@always"
  - name: Job 2
    command: /usr/bin/touch /tmp/2
    schedule: "0 */2 * * * *"
  - name: Job 3
    command: /usr/bin/touch /tmp/3
    schedule: "0 */3 * * * *"
`

// WriteTemplate writes the starter jobfile to path. Refuses to clobber
// an existing file.
func WriteTemplate(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrJobfileExists, path)
	}
	return afero.WriteFile(fs, path, []byte(templateContent), 0644)
}
