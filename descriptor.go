package cellpotts

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/lattice"
)

// Descriptor is the self-describing, serializable record recommended for
// replaying a simulation across processes: shape,
// periodicity, neighborhood kind, CellTable columns, and the list of
// penalty configurations (tagged by kind), plus a run identifier.
type Descriptor struct {
	RunID        string           `yaml:"run_id" json:"run_id"`
	Shape        []int            `yaml:"shape" json:"shape"`
	Periodic     []bool           `yaml:"periodic" json:"periodic"`
	Neighborhood string           `yaml:"neighborhood" json:"neighborhood"`
	Cells        []CellDescriptor `yaml:"cells" json:"cells"`
	Penalties    []PenaltySpec    `yaml:"penalties" json:"penalties"`
	Temperature  float64          `yaml:"temperature" json:"temperature"`
}

// CellDescriptor mirrors one group argument to CellState: a name,
// per-group desired volume/perimeter, and how many actual cells to
// instantiate from it.
type CellDescriptor struct {
	Name             string `yaml:"name" json:"name"`
	DesiredVolume    int64  `yaml:"desired_volume" json:"desired_volume"`
	DesiredPerimeter int64  `yaml:"desired_perimeter,omitempty" json:"desired_perimeter,omitempty"`
	Count            int    `yaml:"count" json:"count"`
}

// PenaltySpec tags a penalty configuration by kind with an opaque
// parameter payload, a "tagged variant" at the
// data level (the Go penalty list itself is a plain []Penalty slice of
// concrete types; PenaltySpec exists only for serialization).
type PenaltySpec struct {
	Kind   string                 `yaml:"kind" json:"kind"`
	Params map[string]interface{} `yaml:"params" json:"params"`
}

// NewDescriptor captures a fresh run identifier alongside the given shape,
// periodicity, and neighborhood.
func NewDescriptor(shape []int, periodic []bool, neighborhood lattice.Neighborhood) *Descriptor {
	return &Descriptor{
		RunID:        uuid.New().String(),
		Shape:        shape,
		Periodic:     periodic,
		Neighborhood: neighborhood.String(),
		Temperature:  1.0,
	}
}

// ToYAML round-trips the descriptor to YAML text.
func (d *Descriptor) ToYAML() ([]byte, error) { return yaml.Marshal(d) }

// FromYAML decodes a YAML document produced by ToYAML (or hand-authored)
// into a Descriptor.
func FromYAML(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// descriptorSchema is the JSON Schema every Descriptor must satisfy before
// it is used to build a CellSpace/CellTable/penalty list, the eager
// eager validation path every constructor in this module follows.
const descriptorSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["shape", "neighborhood", "cells"],
	"properties": {
		"shape": {"type": "array", "items": {"type": "integer", "minimum": 1}, "minItems": 1, "maxItems": 8},
		"periodic": {"type": "array", "items": {"type": "boolean"}},
		"neighborhood": {"type": "string", "enum": ["von-neumann", "moore"]},
		"cells": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "desired_volume", "count"],
				"properties": {
					"name": {"type": "string"},
					"desired_volume": {"type": "integer", "minimum": 0},
					"desired_perimeter": {"type": "integer", "minimum": 0},
					"count": {"type": "integer", "minimum": 1}
				}
			}
		},
		"temperature": {"type": "number", "exclusiveMinimum": 0}
	}
}`

// Validate checks the descriptor against descriptorSchema, round-tripping
// it through JSON since jsonschema validates decoded JSON values, not Go
// structs directly.
func (d *Descriptor) Validate() error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("descriptor.json", strings.NewReader(descriptorSchema)); err != nil {
		return err
	}
	schema, err := compiler.Compile("descriptor.json")
	if err != nil {
		return err
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return NewConfigurationError("Descriptor", err.Error())
	}
	return nil
}

// BuildCellTable constructs the CellTable described by d.Cells, following
// CellState's group/broadcast conventions.
func (d *Descriptor) BuildCellTable() (*celltable.CellTable, error) {
	names := make([]string, len(d.Cells))
	desiredVolumes := make([]int64, len(d.Cells))
	desiredPerimeters := make([]int64, len(d.Cells))
	counts := make([]int, len(d.Cells))
	for i, c := range d.Cells {
		names[i] = c.Name
		desiredVolumes[i] = c.DesiredVolume
		desiredPerimeters[i] = c.DesiredPerimeter
		counts[i] = c.Count
	}
	return celltable.NewCellState(names, desiredVolumes, counts, celltable.WithDesiredPerimeters(desiredPerimeters))
}

// BuildCellSpace constructs the CellSpace described by d.
func (d *Descriptor) BuildCellSpace() (*lattice.CellSpace, error) {
	kind := lattice.VonNeumann
	if d.Neighborhood == "moore" {
		kind = lattice.Moore
	}
	return lattice.NewCellSpace(d.Shape, d.Periodic, kind)
}
