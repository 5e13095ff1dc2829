package inspector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/spektr-org/loginspector/diagnostics"
	"github.com/spektr-org/loginspector/engine"
	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/schema"
	"github.com/spektr-org/loginspector/vocab"
)

// ── Test Data ─────────────────────────────────────────────────────────────────

func pick(name string, level vocab.MembershipCase, picked bool) logfile.LogFeature {
	return logfile.LogFeature{
		IsPicked:       picked,
		UserName:       name,
		UserAlias:      name,
		UserLevel:      level,
		TagSource:      vocab.TagSourcePageTag,
		TinEyeResults:  vocab.TinEyeNoMatches,
		AiCheckResults: vocab.AiCheckHuman,
	}
}

func writeLog(t *testing.T, dir, name, page string, features ...logfile.LogFeature) {
	t.Helper()
	data, err := logfile.Encode(logfile.Log{Page: page, Features: features})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeLog(t, dir, "a.json", "snap:flowers",
		pick("alice", vocab.MembershipSnapVipMember, true),
		pick("nora", vocab.MembershipNone, false))
	writeLog(t, dir, "b.json", "click:macro",
		pick("bob", vocab.MembershipClickGoldMember, true))
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"page": "snap:x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// ============================================================================
// LOAD
// ============================================================================

func TestSessionLoad(t *testing.T) {
	s := NewSession()
	res, err := s.Load(context.Background(), fixtureDir(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(res.Logs) != 2 || len(res.Failures) != 1 {
		t.Fatalf("logs=%d failures=%d, want 2/1", len(res.Logs), len(res.Failures))
	}
	if s.Summary() != "2 logs loaded" {
		t.Errorf("Summary() = %q", s.Summary())
	}

	want := []string{"all", "click", "click:macro", "snap", "snap:flowers"}
	if got := s.SelectionValues(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectionValues() = %v, want %v", got, want)
	}

	decode := s.Diagnostics().Count(diagnostics.KindDecodeError)
	if decode != 1 {
		t.Errorf("decode diagnostics = %d, want 1", decode)
	}
	entry := s.Diagnostics().Entries()[0]
	if entry.FileName != "broken.json" || entry.Value != "features" {
		t.Errorf("decode entry = %+v", entry)
	}
}

func TestSessionLoadAccessErrorClearsSet(t *testing.T) {
	s := NewSession()
	if _, err := s.Load(context.Background(), fixtureDir(t)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "gone")
	_, err := s.Load(context.Background(), missing)

	var ae *logfile.AccessError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *logfile.AccessError", err)
	}
	if len(s.Logs()) != 0 || s.Summary() != "no logs loaded" {
		t.Errorf("set not cleared: %d logs, %q", len(s.Logs()), s.Summary())
	}
	if got := s.SelectionValues(); !reflect.DeepEqual(got, []string{"all"}) {
		t.Errorf("SelectionValues() = %v", got)
	}
	if s.Dir() != missing {
		t.Errorf("Dir() = %q", s.Dir())
	}
}

func TestSessionLoadReplacesSet(t *testing.T) {
	s := NewSession()
	if _, err := s.Load(context.Background(), fixtureDir(t)); err != nil {
		t.Fatal(err)
	}
	before := s.Logs()

	dir := t.TempDir()
	writeLog(t, dir, "only.json", "other:page", pick("ann", vocab.MembershipArtist, true))
	if _, err := s.Load(context.Background(), dir); err != nil {
		t.Fatal(err)
	}

	if len(before) != 2 {
		t.Errorf("previous slice mutated: %d logs", len(before))
	}
	if len(s.Logs()) != 1 || s.Logs()[0].FileName != "only.json" {
		t.Errorf("logs = %+v", s.Logs())
	}
}

// ============================================================================
// SELECT
// ============================================================================

func TestSessionSelect(t *testing.T) {
	s := NewSession()
	if _, err := s.Load(context.Background(), fixtureDir(t)); err != nil {
		t.Fatal(err)
	}

	all, err := s.Select("all")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if all.Grouping.Picks != 2 || all.Grouping.Features != 3 {
		t.Errorf("all: picks=%d features=%d", all.Grouping.Picks, all.Grouping.Features)
	}
	if s.Diagnostics().Count(diagnostics.KindNoneMembership) != 1 {
		t.Errorf("none-membership warnings = %d", s.Diagnostics().Count(diagnostics.KindNoneMembership))
	}

	snap, err := s.Select("snap")
	if err != nil {
		t.Fatal(err)
	}
	var dg engine.DimensionGroups
	for _, d := range snap.Grouping.Dimensions {
		if d.Dimension.Key == schema.DimMembership {
			dg = d
		}
	}
	if len(dg.Groups) != 2 || dg.Groups[0].Key != string(vocab.MembershipNone) {
		t.Errorf("snap membership groups = %+v", dg.Groups)
	}

	none, err := s.Select("nowhere")
	if err != nil {
		t.Fatalf("unknown selection errored: %v", err)
	}
	if none.Grouping != nil || none.Type != "text" {
		t.Errorf("unknown selection = %+v", none)
	}
}

func TestSessionWarningsOncePerLoad(t *testing.T) {
	s := NewSession()
	dir := fixtureDir(t)
	if _, err := s.Load(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Select("all"); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Diagnostics().Count(diagnostics.KindNoneMembership); got != 1 {
		t.Errorf("none-membership warnings after 3 selects = %d, want 1", got)
	}

	if err := os.Remove(filepath.Join(dir, "broken.json")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	if got := s.Diagnostics().Count(diagnostics.KindDecodeError); got != 0 {
		t.Errorf("decode diagnostics after reload = %d, want 0", got)
	}
	if got := s.Diagnostics().Count(diagnostics.KindNoneMembership); got != 1 {
		t.Errorf("none-membership warnings after reload = %d, want 1", got)
	}
}

func TestSessionConcurrentSelect(t *testing.T) {
	s := NewSession()
	dir := fixtureDir(t)
	if _, err := s.Load(context.Background(), dir); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := s.Select("all"); err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := s.Load(context.Background(), dir); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if s.Summary() != "2 logs loaded" {
		t.Errorf("Summary() = %q", s.Summary())
	}
}
