package models

import "time"

// Document is an authored text as stored on disk. The session never sees
// this type; it only receives Content and hands back the committed text.
type Document struct {
	Name     string    `yaml:"name" json:"name"`
	Path     string    `yaml:"-" json:"path"`
	Tags     []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Content  string    `yaml:"-" json:"content"`
	Modified time.Time `yaml:"-" json:"modified"`
}

// DocumentMeta is the YAML frontmatter written at the top of a document file
type DocumentMeta struct {
	Name string   `yaml:"name,omitempty"`
	Tags []string `yaml:"tags,omitempty"`
}

// ExportedDocument is the structured form emitted by `export -o json|yaml`
type ExportedDocument struct {
	Name string   `yaml:"name" json:"name"`
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Text string   `yaml:"text" json:"text"`
	HTML string   `yaml:"html" json:"html"`
}
