package observability

import (
	"errors"
	"testing"
	"time"
)

type recordingHooks struct {
	NoopGraphHooks
	starts    []string
	completes []exportResult
	issues    []int
}

type exportResult struct {
	path string
	size int
	err  error
}

func (r *recordingHooks) OnExportStart(path string) {
	r.starts = append(r.starts, path)
}

func (r *recordingHooks) OnExportComplete(path string, size int, _ time.Duration, err error) {
	r.completes = append(r.completes, exportResult{path: path, size: size, err: err})
}

func (r *recordingHooks) OnValidateComplete(issues int, _ time.Duration) {
	r.issues = append(r.issues, issues)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Errorf("default hooks = %T, want NoopGraphHooks", Graph())
	}
	// Calling the no-ops must be safe.
	Graph().OnExportStart("out.json")
	Graph().OnExportComplete("out.json", 0, 0, nil)
	Graph().OnValidateComplete(0, 0)
}

func TestSetGraphHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetGraphHooks(rec)

	Graph().OnExportStart("out.json")
	Graph().OnExportComplete("out.json", 42, time.Millisecond, nil)
	wantErr := errors.New("disk full")
	Graph().OnExportComplete("out.json", 0, time.Millisecond, wantErr)
	Graph().OnValidateComplete(3, time.Millisecond)

	if len(rec.starts) != 1 || rec.starts[0] != "out.json" {
		t.Errorf("starts = %v, want [out.json]", rec.starts)
	}
	if len(rec.completes) != 2 || rec.completes[0].size != 42 || rec.completes[1].err != wantErr {
		t.Errorf("completes = %+v, want one success and one failure", rec.completes)
	}
	if len(rec.issues) != 1 || rec.issues[0] != 3 {
		t.Errorf("issues = %v, want [3]", rec.issues)
	}
}

func TestSetGraphHooksIgnoresNil(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetGraphHooks(rec)
	SetGraphHooks(nil)
	if Graph() != GraphHooks(rec) {
		t.Errorf("Graph() = %T, want the previously registered hooks", Graph())
	}
}

func TestReset(t *testing.T) {
	SetGraphHooks(&recordingHooks{})
	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Errorf("hooks after Reset = %T, want NoopGraphHooks", Graph())
	}
}
