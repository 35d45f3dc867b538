package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ocpm/declareminer/pkg/ocpm"
	"gopkg.in/yaml.v3"
)

// yamlLog is a small smoke-test log fixture shape: plain activity/
// object/relationship records with no typed attributes, not an OCEL
// interchange format. It exists so the CLI has something to load
// without pulling in an OCEL XML/JSON/SQLite reader.
type yamlLog struct {
	ObjectTypes []string       `yaml:"objectTypes"`
	EventTypes  []string       `yaml:"eventTypes"`
	Objects     []yamlObject   `yaml:"objects"`
	Events      []yamlEvent    `yaml:"events"`
}

type yamlObject struct {
	ID            string              `yaml:"id"`
	Type          string              `yaml:"type"`
	Relationships []yamlRelationship  `yaml:"relationships,omitempty"`
}

type yamlEvent struct {
	ID            string             `yaml:"id"`
	Type          string             `yaml:"type"`
	Timestamp     time.Time          `yaml:"timestamp"`
	Relationships []yamlRelationship `yaml:"relationships"`
}

type yamlRelationship struct {
	Qualifier string `yaml:"qualifier"`
	TargetID  string `yaml:"targetId"`
}

func (r yamlRelationship) toRelationship() ocpm.Relationship {
	return ocpm.Relationship{Qualifier: r.Qualifier, TargetID: r.TargetID}
}

func (l yamlLog) toRawLog() ocpm.RawLog {
	var raw ocpm.RawLog
	for _, ot := range l.ObjectTypes {
		raw.ObjectTypes = append(raw.ObjectTypes, ocpm.TypeRecord{Name: ot})
	}
	for _, et := range l.EventTypes {
		raw.EventTypes = append(raw.EventTypes, ocpm.TypeRecord{Name: et})
	}
	for _, o := range l.Objects {
		ro := ocpm.RawObject{ID: o.ID, Type: o.Type}
		for _, r := range o.Relationships {
			ro.Relationships = append(ro.Relationships, r.toRelationship())
		}
		raw.Objects = append(raw.Objects, ro)
	}
	for _, e := range l.Events {
		re := ocpm.RawEvent{ID: e.ID, Type: e.Type, Timestamp: e.Timestamp}
		for _, r := range e.Relationships {
			re.Relationships = append(re.Relationships, r.toRelationship())
		}
		raw.Events = append(raw.Events, re)
	}
	return raw
}

// loadFixtureLog reads a smoke-test log fixture from path and indexes it.
func loadFixtureLog(path string) (*ocpm.Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var l yamlLog
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return ocpm.BuildLog(l.toRawLog()), nil
}
