package graph

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/layout"
)

func sampleDocument() Document {
	return Document{
		Title: "Request lifecycle",
		Scenes: []Scene{
			{
				Title:     "Overview",
				Archetype: "flow",
				Nodes: []Node{
					{ID: "client", Label: "Client"},
					{ID: "lb", Label: "Load balancer"},
					{ID: "api"},
				},
				Edges: []Edge{
					{From: "client", To: "lb"},
					{From: "lb", To: "api", Label: "routes"},
				},
			},
		},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := MarshalDocument(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(doc, back) {
		t.Errorf("round trip changed document:\n%+v\nvs\n%+v", doc, back)
	}

	// Reader/Writer path matches byte-level helpers.
	var buf bytes.Buffer
	if err := WriteDocument(doc, &buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	again, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Error("reader round trip changed document")
	}
}

func TestUnmarshalDocumentInvalid(t *testing.T) {
	_, err := UnmarshalDocument([]byte("{not json"))
	if err == nil {
		t.Fatal("invalid JSON should error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("error code = %q, want INVALID_DOCUMENT", errors.GetCode(err))
	}
}

func TestDisplayLabel(t *testing.T) {
	n := Node{ID: "api"}
	if n.DisplayLabel() != "api" {
		t.Errorf("DisplayLabel = %q, want id fallback", n.DisplayLabel())
	}
	n.Label = "API Gateway"
	if n.DisplayLabel() != "API Gateway" {
		t.Errorf("DisplayLabel = %q, want label", n.DisplayLabel())
	}
}

func TestDocumentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr bool
	}{
		{"valid", func(*Document) {}, false},
		{"no scenes", func(d *Document) { d.Scenes = nil }, true},
		{"bad archetype", func(d *Document) { d.Scenes[0].Archetype = "spiral" }, true},
		{"empty node id", func(d *Document) { d.Scenes[0].Nodes[0].ID = "" }, true},
		{"duplicate node id", func(d *Document) { d.Scenes[0].Nodes[1].ID = "client" }, true},
		{"dangling edge allowed", func(d *Document) { d.Scenes[0].Edges[0].To = "ghost" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			tt.mutate(&doc)
			err := doc.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToLayoutInput(t *testing.T) {
	scene := sampleDocument().Scenes[0]
	nodes, edges, arch, err := scene.ToLayoutInput()
	if err != nil {
		t.Fatalf("ToLayoutInput: %v", err)
	}

	if arch != layout.Flow {
		t.Errorf("archetype = %v, want flow", arch)
	}
	if len(nodes) != 3 || len(edges) != 2 {
		t.Fatalf("got %d nodes %d edges", len(nodes), len(edges))
	}
	// Label falls back to ID for unlabeled node.
	if nodes[2].Label != "api" {
		t.Errorf("unlabeled node label = %q, want id fallback", nodes[2].Label)
	}
}

func TestFromResult(t *testing.T) {
	scene := sampleDocument().Scenes[0]
	nodes, edges, arch, err := scene.ToLayoutInput()
	if err != nil {
		t.Fatalf("ToLayoutInput: %v", err)
	}

	engine, err := layout.New(layout.DefaultConfig(), layout.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	res := engine.Generate(context.Background(), nodes, edges, arch)

	l := FromResult(scene, res)
	if l.Archetype != "flow" || l.Scene != "Overview" {
		t.Errorf("metadata not carried: %+v", l)
	}
	if len(l.Nodes) != len(res.Nodes) || len(l.Edges) != len(res.Edges) {
		t.Error("geometry not carried")
	}
	if l.Success != res.Success || l.Confidence != res.Confidence {
		t.Error("scores not carried")
	}
	if l.Metrics.OverlapCount != res.Metrics.OverlapCount {
		t.Error("metrics not carried")
	}

	// Serialized layout survives a JSON round trip.
	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("marshal layout: %v", err)
	}
	back, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("unmarshal layout: %v", err)
	}
	if !reflect.DeepEqual(l, back) {
		t.Error("layout round trip changed data")
	}
}
