package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mwalraven/reportkit"
	"github.com/mwalraven/reportkit/report"
)

// Job is the YAML description of a full pipeline run.
type Job struct {
	Template  string       `yaml:"template"`
	OutputDir string       `yaml:"output_dir"`
	FileName  string       `yaml:"file_name"`
	Revisions []RecordSpec `yaml:"revisions"`
	Fields    *FieldSpec   `yaml:"fields"`
	Convert   bool         `yaml:"convert"`
}

// RecordSpec is one revision row in the job file.
type RecordSpec struct {
	Revision string `yaml:"revision"`
	Date     string `yaml:"date"`
	Status   string `yaml:"status"`
	Comment  string `yaml:"comment"`
	Author   string `yaml:"author"`
	Checker  string `yaml:"checker"`
}

// FieldSpec holds the project-info values in the job file.
type FieldSpec struct {
	ProjectName string `yaml:"project_name"`
	Client      string `yaml:"client"`
	Date        string `yaml:"date"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author"`
	CheckedBy   string `yaml:"checked_by"`
}

// LoadJob reads and validates a job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("invalid job file: %w", err)
	}
	return &job, nil
}

func (j *Job) validate() error {
	if j.Template == "" {
		return fmt.Errorf("template is required")
	}
	for i, r := range j.Revisions {
		if r.Revision == "" {
			return fmt.Errorf("revisions[%d]: revision is required", i)
		}
	}
	return nil
}

// records converts the job's revision specs into report records.
func (j *Job) records() []report.Record {
	records := make([]report.Record, len(j.Revisions))
	for i, r := range j.Revisions {
		records[i] = report.Record{
			Revision: r.Revision,
			Date:     r.Date,
			Status:   r.Status,
			Comment:  r.Comment,
			Author:   r.Author,
			Checker:  r.Checker,
		}
	}
	return records
}

// fieldValues converts the job's field spec for the pipeline.
func (j *Job) fieldValues() reportkit.FieldValues {
	return reportkit.FieldValues{
		ProjectName: j.Fields.ProjectName,
		Client:      j.Fields.Client,
		Date:        j.Fields.Date,
		Version:     j.Fields.Version,
		Author:      j.Fields.Author,
		CheckedBy:   j.Fields.CheckedBy,
	}
}
