// Package planfile loads a day plan from YAML so a run can skip the
// interactive prompts.
package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xvierd/dusk/internal/domain"
)

type yamlTask struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type yamlPlan struct {
	Bedtime string     `yaml:"bedtime"`
	Tasks   []yamlTask `yaml:"tasks"`
}

// Load reads and parses the plan file at path.
func Load(path string) (domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("read plan file: %w", err)
	}
	plan, err := Parse(data)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// Parse decodes a plan. Unknown keys are rejected. Overlaps are left to
// domain.Plan.Validate.
func Parse(data []byte) (domain.Plan, error) {
	var raw yamlPlan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Plan{}, errors.New("plan file is empty")
		}
		return domain.Plan{}, fmt.Errorf("parse plan yaml: %w", err)
	}

	if raw.Bedtime == "" {
		return domain.Plan{}, errors.New("plan has no bedtime")
	}
	bedtime, err := domain.ParseTimeOfDay(raw.Bedtime)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("bedtime: %w", err)
	}

	tasks := make([]domain.Task, 0, len(raw.Tasks))
	for i, rt := range raw.Tasks {
		start, err := domain.ParseTimeOfDay(rt.Start)
		if err != nil {
			return domain.Plan{}, fmt.Errorf("task %d (%s) start: %w", i+1, rt.Name, err)
		}
		end, err := domain.ParseTimeOfDay(rt.End)
		if err != nil {
			return domain.Plan{}, fmt.Errorf("task %d (%s) end: %w", i+1, rt.Name, err)
		}
		task, err := domain.NewTask(rt.Name, start, end)
		if err != nil {
			return domain.Plan{}, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, task)
	}

	return domain.NewPlan(bedtime, tasks), nil
}
