package topics

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/henrybloomingdale/pubmed-topics/internal/hf"
)

// fakeRecognizer counts calls and returns canned entities or an error.
type fakeRecognizer struct {
	calls    int
	entities []hf.Entity
	err      error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, text, token string) ([]hf.Entity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entities, nil
}

func TestExtract_ShortCircuitNoCredential(t *testing.T) {
	ner := &fakeRecognizer{entities: []hf.Entity{{Word: "Diabetes"}}}
	e := NewExtractor(ner, DefaultStoplist())

	out := e.Extract(context.Background(), "Diabetes in adults", "")
	if out.Failed() {
		t.Errorf("missing credential must not be an error, got %v", out.Err)
	}
	if len(out.Entities) != 0 {
		t.Errorf("expected empty entities, got %v", out.Entities)
	}
	if ner.calls != 0 {
		t.Errorf("expected zero network calls, got %d", ner.calls)
	}
}

func TestExtract_ShortCircuitBlankTitle(t *testing.T) {
	ner := &fakeRecognizer{entities: []hf.Entity{{Word: "Diabetes"}}}
	e := NewExtractor(ner, DefaultStoplist())

	for _, title := range []string{"", "   ", "\t\n"} {
		out := e.Extract(context.Background(), title, "hf_test")
		if out.Failed() {
			t.Errorf("blank title must not be an error, got %v", out.Err)
		}
		if len(out.Entities) != 0 {
			t.Errorf("expected empty entities for title %q, got %v", title, out.Entities)
		}
	}
	if ner.calls != 0 {
		t.Errorf("expected zero network calls, got %d", ner.calls)
	}
}

func TestExtract_RecoversFailure(t *testing.T) {
	ner := &fakeRecognizer{err: errors.New("model is loading")}
	e := NewExtractor(ner, DefaultStoplist())

	out := e.Extract(context.Background(), "Diabetes in adults", "hf_test")
	if !out.Failed() {
		t.Error("expected failure reason to be preserved")
	}
	if out.Entities == nil || len(out.Entities) != 0 {
		t.Errorf("expected empty non-nil entities on failure, got %v", out.Entities)
	}
}

func TestExtract_StoplistCaseInsensitiveOnRaw(t *testing.T) {
	ner := &fakeRecognizer{entities: []hf.Entity{
		{Word: "Study"},
		{Word: "Diabetes"},
		{Word: "PATIENTS"},
		{Word: "Insulin"},
	}}
	e := NewExtractor(ner, NewStoplist([]string{"study", "patients"}))

	out := e.Extract(context.Background(), "A study of diabetes patients on insulin", "hf_test")
	want := []string{"Diabetes", "Insulin"}
	if !reflect.DeepEqual(out.Entities, want) {
		t.Errorf("got %v, want %v", out.Entities, want)
	}
}

func TestExtract_PreservesOrderAndDuplicates(t *testing.T) {
	ner := &fakeRecognizer{entities: []hf.Entity{
		{Word: "Insulin"},
		{Word: "Glucose"},
		{Word: "Insulin"},
	}}
	e := NewExtractor(ner, DefaultStoplist())

	out := e.Extract(context.Background(), "Insulin and glucose and insulin again", "hf_test")
	want := []string{"Insulin", "Glucose", "Insulin"}
	if !reflect.DeepEqual(out.Entities, want) {
		t.Errorf("got %v, want %v", out.Entities, want)
	}
}

func TestExtract_SkipsEmptyWords(t *testing.T) {
	ner := &fakeRecognizer{entities: []hf.Entity{
		{Word: ""},
		{Word: "Thyroid"},
	}}
	e := NewExtractor(ner, DefaultStoplist())

	out := e.Extract(context.Background(), "Thyroid function", "hf_test")
	want := []string{"Thyroid"}
	if !reflect.DeepEqual(out.Entities, want) {
		t.Errorf("got %v, want %v", out.Entities, want)
	}
}

func TestExtract_RawWordsNotNormalized(t *testing.T) {
	ner := &fakeRecognizer{entities: []hf.Entity{{Word: "Type-2 Diabetes"}}}
	e := NewExtractor(ner, DefaultStoplist())

	out := e.Extract(context.Background(), "Type-2 diabetes", "hf_test")
	if len(out.Entities) != 1 || out.Entities[0] != "Type-2 Diabetes" {
		t.Errorf("extractor must not normalize, got %v", out.Entities)
	}
}
