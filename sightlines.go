package dungeongraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// SightlineDOT returns the sightline graph in Graphviz DOT format.
// Nodes are the kept rooms (main rooms filled), edges are sightlines
// labelled with the rooms they passed through.
func (d *Dungeon) SightlineDOT() string {
	var buf bytes.Buffer
	buf.WriteString("graph dungeon {\n")
	buf.WriteString("  node [shape=box, style=\"rounded\"];\n")

	for _, r := range d.Rooms {
		attrs := []string{fmt.Sprintf("label=\"room %d\"", r.ID)}
		if r.MainRoom {
			attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=magenta")
		}
		fmt.Fprintf(&buf, "  r%d [%s];\n", r.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, s := range d.Sightlines {
		if s.From == s.To {
			continue
		}
		hits := make([]string, 0, len(s.Hits))
		for _, id := range s.Hits {
			if id == s.From || id == s.To {
				continue
			}
			hits = append(hits, fmt.Sprintf("%d", id))
		}
		fmt.Fprintf(&buf, "  r%d -- r%d [label=%q];\n", s.From, s.To, strings.Join(hits, ","))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSightlinesSVG renders SightlineDOT() to SVG using Graphviz.
func (d *Dungeon) RenderSightlinesSVG(ctx context.Context) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(d.SightlineDOT()))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
