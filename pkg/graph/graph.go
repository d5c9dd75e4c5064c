package graph

import (
	"encoding/json"
	"io"
	"os"

	"github.com/narravis/narravis/pkg/errors"
)

// =============================================================================
// Document - Classifier Output
// =============================================================================

// Document is the canonical input format: a narrated explanation segmented
// into scenes, each with its abstract graph and declared archetype.
type Document struct {
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Scenes []Scene `json:"scenes" bson:"scenes"`
}

// Scene is one diagram: the graph extracted from a segment of the
// explanation plus the archetype the classifier selected for it.
type Scene struct {
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Archetype string `json:"archetype" bson:"archetype"`
	Nodes     []Node `json:"nodes" bson:"nodes"`
	Edges     []Edge `json:"edges,omitempty" bson:"edges,omitempty"`
}

// Node is an abstract diagram node.
type Node struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed edge between two nodes by ID.
type Edge struct {
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

// =============================================================================
// Serialization Helpers
// =============================================================================

// UnmarshalDocument deserializes JSON bytes to a Document.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	return d, nil
}

// MarshalDocument serializes a Document to indented JSON.
func MarshalDocument(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ReadDocument decodes a Document from r.
func ReadDocument(r io.Reader) (Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	return d, nil
}

// LoadDocument reads and decodes a Document from a file.
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, err
	}
	defer f.Close()
	return ReadDocument(f)
}

// WriteDocument encodes a Document as indented JSON to w.
func WriteDocument(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
