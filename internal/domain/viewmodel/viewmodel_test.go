package viewmodel

import (
	"strings"
	"testing"

	"github.com/miokit/mioviewer/internal/platform/fhir"
)

func TestBaseModel(t *testing.T) {
	m := NewBase("Impfung", []Value{
		{Label: "Datum", Value: "15.06.2021"},
		{Label: "Impfstoff", Value: "Comirnaty"},
	})

	if m.Headline() != "Impfung" {
		t.Errorf("headline = %q", m.Headline())
	}
	if got := m.MainValue(); got.Value != "15.06.2021" {
		t.Errorf("main value = %+v", got)
	}
	want := "Impfung\nDatum: 15.06.2021\nImpfstoff: Comirnaty"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGroupSortStability(t *testing.T) {
	// Five rows, two pairs sharing a sort key: equal keys keep their
	// relative input order.
	rows := []Value{
		{Label: "c", Value: "2021"},
		{Label: "a1", Value: "2019"},
		{Label: "b1", Value: "2020"},
		{Label: "a2", Value: "2019"},
		{Label: "b2", Value: "2020"},
	}
	g := NewGroup("Impfungen", rows, func(a, b Value) bool { return a.Value < b.Value })

	var labels []string
	for _, v := range g.Values() {
		labels = append(labels, v.Label)
	}
	want := "a1 a2 b1 b2 c"
	if got := strings.Join(labels, " "); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestGroupInputOrderWithoutComparator(t *testing.T) {
	rows := []Value{{Label: "z"}, {Label: "a"}}
	g := NewGroup("G", rows, nil)
	if g.Values()[0].Label != "z" || g.Values()[1].Label != "a" {
		t.Error("nil comparator must preserve input order")
	}
}

func TestEmptyGroupHint(t *testing.T) {
	g := NewGroup("Erkrankungen", nil, nil)
	if !g.IsEmpty() {
		t.Fatal("group should report empty")
	}
	vs := g.Values()
	if len(vs) != 1 || vs[0].RenderAs != RenderHint {
		t.Fatalf("values = %+v, want single hint row", vs)
	}
	if want := "Unter 'Erkrankungen' sind keine Einträge vorhanden"; vs[0].Value != want {
		t.Errorf("hint = %q, want %q", vs[0].Value, want)
	}
}

func TestPaths(t *testing.T) {
	ref := fhir.NewRef("urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0002")
	got := EntryPath("impfpass-demo", ref)
	want := "/entry/impfpass-demo/urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0002"
	if got != want {
		t.Errorf("EntryPath = %q, want %q", got, want)
	}

	parent := fhir.NewRef("urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0003")
	sub := SubEntryPath("impfpass-demo", parent, ref)
	if !strings.HasPrefix(sub, "/subEntry/impfpass-demo/") || !strings.HasSuffix(sub, ref.String()) {
		t.Errorf("SubEntryPath = %q", sub)
	}

	filtered := WithFilter(got, "section", "telecom")
	if filtered != want+"/section/telecom" {
		t.Errorf("WithFilter = %q", filtered)
	}
}

func TestHasSubModels(t *testing.T) {
	v := Value{}
	if v.HasSubModels() {
		t.Error("zero value must not report sub-models")
	}
	v = Value{
		SubEntry:  fhir.NewRef("Practitioner/pr-1"),
		SubModels: []Factory{func(*fhir.Bundle, fhir.Ref) (Model, bool) { return nil, false }},
	}
	if !v.HasSubModels() {
		t.Error("value with ref and factories must report sub-models")
	}
}
