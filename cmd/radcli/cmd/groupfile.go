package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/radwatch/radclient/pkg/radmodel"
)

// groupFile is the YAML shape accepted by `radcli create`.
type groupFile struct {
	Name               string         `yaml:"name"`
	UpdateModel        bool           `yaml:"update_model"`
	AnomalyThreshold   *float64       `yaml:"anomaly_threshold,omitempty"`
	MinDurationMinutes *int           `yaml:"min_duration_minutes,omitempty"`
	Subgroups          []subgroupFile `yaml:"subgroups"`
}

type subgroupFile struct {
	Name               string      `yaml:"name,omitempty"`
	ID                 string      `yaml:"id,omitempty"`
	AnomalyThreshold   *float64    `yaml:"anomaly_threshold,omitempty"`
	MinDurationMinutes *int        `yaml:"min_duration_minutes,omitempty"`
	Parameters         []paramFile `yaml:"parameters"`
}

type paramFile struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label,omitempty"`
}

// trainingFile is the YAML shape accepted by --training files.
type trainingFile struct {
	Ranges []struct {
		From time.Time `yaml:"from"`
		To   time.Time `yaml:"to"`
	} `yaml:"ranges,omitempty"`
	ExcludedSubgroups []int `yaml:"excluded_subgroups,omitempty"`
}

func loadGroupFile(path string) (*radmodel.GroupSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group file: %w", err)
	}

	var spec groupFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse group file %s: %w", path, err)
	}

	return spec.toSettings(), nil
}

func (f *groupFile) toSettings() *radmodel.GroupSettings {
	settings := &radmodel.GroupSettings{
		Name: f.Name,
		Options: radmodel.GroupOptions{
			AnomalyThreshold:   f.AnomalyThreshold,
			MinDurationMinutes: f.MinDurationMinutes,
			UpdateModel:        f.UpdateModel,
		},
	}
	for _, sub := range f.Subgroups {
		settings.Subgroups = append(settings.Subgroups, sub.toSettings())
	}
	return settings
}

func (f subgroupFile) toSettings() radmodel.SubgroupSettings {
	sub := radmodel.SubgroupSettings{
		Name: f.Name,
		ID:   f.ID,
		Options: radmodel.SubgroupOptions{
			AnomalyThreshold:   f.AnomalyThreshold,
			MinDurationMinutes: f.MinDurationMinutes,
		},
	}
	for _, p := range f.Parameters {
		sub.Parameters = append(sub.Parameters, radmodel.Parameter{Key: p.Key, Label: p.Label})
	}
	return sub
}

func loadTrainingFile(path string) (*radmodel.TrainingConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read training file: %w", err)
	}

	var spec trainingFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse training file %s: %w", path, err)
	}

	training := &radmodel.TrainingConfig{ExcludedSubgroups: spec.ExcludedSubgroups}
	for _, r := range spec.Ranges {
		training.Ranges = append(training.Ranges, radmodel.TimeRange{From: r.From, To: r.To})
	}
	return training, nil
}
