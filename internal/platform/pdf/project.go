package pdf

import (
	"github.com/rs/zerolog/log"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// DefaultMaxDepth bounds sub-model nesting in a report. The known MIO
// graphs stay well below it.
const DefaultMaxDepth = 3

// Projector turns presentation models into content trees. The zero
// value uses DefaultMaxDepth.
type Projector struct {
	MaxDepth int
}

func (p Projector) maxDepth() int {
	if p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

// Project builds the content tree for one model. styles seed the root
// table's style tags.
func (p Projector) Project(b *fhir.Bundle, m viewmodel.Model, styles []string) *Node {
	return p.project(b, m, styles, 0, map[string]bool{})
}

// ProjectAll builds one table per model under a shared root, the shape
// of a full document report.
func (p Projector) ProjectAll(b *fhir.Bundle, models []viewmodel.Model, styles []string) *Node {
	root := &Node{Kind: KindTable, Styles: styles}
	for _, m := range models {
		root.Children = append(root.Children, row(cell(p.Project(b, m, append(styles, "section")))))
	}
	return root
}

func (p Projector) project(b *fhir.Bundle, m viewmodel.Model, styles []string, depth int, visited map[string]bool) *Node {
	table := &Node{Kind: KindTable, Styles: styles}
	table.Children = append(table.Children, row(cell(text(m.Headline(), "header"))))

	values := m.Values()
	if len(values) == 0 {
		hint := viewmodel.EmptyGroupHint(m.Headline())
		table.Children = append(table.Children, row(cell(text(hint.Value, "hint"))))
		return table
	}

	for _, v := range values {
		table.Children = append(table.Children, p.valueRow(v))
		if !v.HasSubModels() {
			continue
		}
		key := v.SubEntry.String()
		// visited holds the refs on the current projection path only, so
		// a cyclic graph terminates while repeated references in sibling
		// rows still expand.
		if visited[key] {
			continue
		}
		if depth+1 >= p.maxDepth() {
			log.Debug().Str("ref", key).Int("depth", depth+1).
				Msg("pdf: sub-model depth limit reached, truncating")
			continue
		}
		visited[key] = true
		subStyles := append(append([]string{}, styles...), "sub")
		for _, build := range v.SubModels {
			sub, ok := build(b, v.SubEntry)
			if !ok {
				continue
			}
			table.Children = append(table.Children,
				row(cell(&Node{Kind: KindRule})),
				row(cell(p.project(b, sub, subStyles, depth+1, visited))),
			)
		}
		delete(visited, key)
	}
	return table
}

func (p Projector) valueRow(v viewmodel.Value) *Node {
	switch v.RenderAs {
	case viewmodel.RenderHint:
		return row(cell(text(v.Value, "hint")))
	case viewmodel.RenderLink:
		return row(cell(text(v.Label, "label")), cell(text(v.Value, "link")))
	default:
		return row(cell(text(v.Label, "label")), cell(text(v.Value)))
	}
}
