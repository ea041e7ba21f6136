package batch

import (
	"fmt"
	"os"

	"github.com/annel0/enhance/internal/box"
	"github.com/annel0/enhance/internal/vec"
	"gopkg.in/yaml.v3"
)

// Job описывает набор именованных векторов и коробок и шаги над ними.
//
//	vectors:
//	  a: [1, -3, 2]
//	boxes:
//	  room: {low: [0, 0, 0], high: [4, 3, 5]}
//	steps:
//	  - {op: cross, args: [a, b], into: c}
//	  - {op: corner, args: [room], corner: Center}
type Job struct {
	Vectors map[string]vec.Vector3d[float64] `yaml:"vectors"`
	Boxes   map[string]box.Box3d[float64]    `yaml:"boxes"`
	Steps   []Step                           `yaml:"steps"`
}

// Step - одна операция задания
type Step struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Index  int      `yaml:"index"`
	Corner string   `yaml:"corner"`
	Face   string   `yaml:"face"`
	Into   string   `yaml:"into"`
}

// ParseJob разбирает задание из YAML
func ParseJob(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job: %w", err)
	}
	if job.Vectors == nil {
		job.Vectors = make(map[string]vec.Vector3d[float64])
	}
	if job.Boxes == nil {
		job.Boxes = make(map[string]box.Box3d[float64])
	}
	return &job, nil
}

// LoadJob читает задание из файла
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job %s: %w", path, err)
	}
	return ParseJob(data)
}
