package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spektr-org/loginspector/engine"
	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/vocab"
)

func writeLogDir(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	logs := map[string]logfile.Log{
		"a.json": {Page: "snap:flowers", Features: []logfile.LogFeature{
			{IsPicked: true, UserName: "alice", UserLevel: vocab.MembershipSnapVipMember,
				TagSource: vocab.TagSourcePageTag, TinEyeResults: vocab.TinEyeNoMatches, AiCheckResults: vocab.AiCheckHuman},
			{IsPicked: false, UserName: "nora", UserLevel: vocab.MembershipNone,
				TagSource: vocab.TagSourcePageTag, TinEyeResults: vocab.TinEyeNoMatches, AiCheckResults: vocab.AiCheckHuman},
		}},
		"b.json": {Page: "click:macro", Features: []logfile.LogFeature{
			{IsPicked: true, UserName: "bob", UserLevel: vocab.MembershipClickGoldMember,
				TagSource: vocab.TagSourceClickHubTag, TinEyeResults: vocab.TinEyeNoMatches, AiCheckResults: vocab.AiCheckAI},
		}},
	}
	for name, l := range logs {
		data, err := logfile.Encode(l)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStatsJSON(t *testing.T) {
	dir := writeLogDir(t)

	out, err := run(t, "stats", dir, "--page", "snap", "--format", "json", "--out", "", "--chart-type", "bar")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	var res engine.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Selection != "snap" || res.Grouping.Picks != 1 || res.Grouping.Features != 2 {
		t.Errorf("result = selection %q picks %d features %d", res.Selection, res.Grouping.Picks, res.Grouping.Features)
	}
	if len(res.ChartConfig.Series) != 5 || res.ChartConfig.ChartType != "bar" {
		t.Errorf("chart = %s with %d series", res.ChartConfig.ChartType, len(res.ChartConfig.Series))
	}
}

func TestStatsCSVToFile(t *testing.T) {
	dir := writeLogDir(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	if _, err := run(t, "stats", dir, "--page", "all", "--format", "csv", "--out", path); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	outFile = ""

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Dimension,Category,Key,Picks,Color\n") {
		t.Errorf("csv = %q", data)
	}
}

func TestStatsMissingDir(t *testing.T) {
	writeLogDir(t)
	_, err := run(t, "stats", filepath.Join(t.TempDir(), "missing"), "--format", "text", "--out", "")

	var ae *logfile.AccessError
	if !errors.As(err, &ae) {
		t.Errorf("err = %v, want *logfile.AccessError", err)
	}
}

func TestPages(t *testing.T) {
	dir := writeLogDir(t)
	out, err := run(t, "pages", dir, "--format", "text", "--out", "")
	if err != nil {
		t.Fatalf("pages failed: %v", err)
	}
	want := "all\nclick\nclick:macro\nsnap\nsnap:flowers\n"
	if out != want {
		t.Errorf("pages = %q, want %q", out, want)
	}
}

func TestValidateJSON(t *testing.T) {
	dir := writeLogDir(t)
	out, err := run(t, "validate", dir, "--format", "json", "--out", "", "--strict=false")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	var report validateReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if report.Summary != "2 logs loaded" || report.Logs != 2 || report.Dir != dir || len(report.Entries) != 2 {
		t.Fatalf("report = %+v", report)
	}
	if report.Entries[0].FileName != "bad.json" || report.Entries[1].UserName != "nora" {
		t.Errorf("entries = %+v", report.Entries)
	}

	if _, err := run(t, "validate", dir, "--format", "json", "--out", "", "--strict"); err == nil {
		t.Error("--strict should fail when problems are found")
	}
	validateStrict = false
}

func TestConfigInit(t *testing.T) {
	writeLogDir(t)
	path := filepath.Join(t.TempDir(), "cfg.toml")

	if _, err := run(t, "config", "init", path, "--force=false"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := run(t, "config", "init", path, "--force=false"); err == nil {
		t.Error("expected refusal to overwrite")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "loginspector version "+version+"\n" {
		t.Errorf("version = %q", out)
	}
}
