package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const policyJSON = `{"schema": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}}`

const policyYAML = `schema:
  type: object
  required:
    - name
  properties:
    name:
      type: string
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the CLI with args, returning stdout, the log stream, and the
// Execute error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, logs bytes.Buffer
	cmd := newRootCommand(&logs)
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), logs.String(), err
}

func TestConformingData(t *testing.T) {
	tmp := t.TempDir()
	policyPath := writeFile(t, tmp, "policy.json", policyJSON)
	dataPath := writeFile(t, tmp, "data.json", `{"name": "alice"}`)

	stdout, _, err := execute(t, policyPath, dataPath)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != msgValid+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestNonConformingData(t *testing.T) {
	tmp := t.TempDir()
	policyPath := writeFile(t, tmp, "policy.json", policyJSON)
	dataPath := writeFile(t, tmp, "data.json", `{"age": 5}`)

	stdout, logs, err := execute(t, policyPath, dataPath)
	if err != nil {
		t.Fatalf("non-conforming data is a routine outcome, got %v", err)
	}
	if stdout != msgInvalid+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(logs, "name") {
		t.Fatalf("expected logged violation naming the missing property, got %q", logs)
	}
}

func TestYAMLAndJSONPoliciesAgree(t *testing.T) {
	tmp := t.TempDir()
	jsonPolicy := writeFile(t, tmp, "policy.json", policyJSON)
	yamlPolicy := writeFile(t, tmp, "policy.yaml", policyYAML)
	dataPath := writeFile(t, tmp, "data.json", `{"name": "alice"}`)

	fromJSON, _, err := execute(t, jsonPolicy, dataPath)
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, _, err := execute(t, yamlPolicy, dataPath)
	if err != nil {
		t.Fatal(err)
	}
	if fromJSON != fromYAML {
		t.Fatalf("outcomes differ: %q vs %q", fromJSON, fromYAML)
	}
}

func TestRepeatedRunsAreIdempotent(t *testing.T) {
	tmp := t.TempDir()
	policyPath := writeFile(t, tmp, "policy.yaml", policyYAML)
	dataPath := writeFile(t, tmp, "data.json", `{"age": 5}`)

	first, _, err := execute(t, policyPath, dataPath)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := execute(t, policyPath, dataPath)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("outputs differ across runs: %q vs %q", first, second)
	}
}

func TestNestedSchemaValidation(t *testing.T) {
	tmp := t.TempDir()
	policyPath := writeFile(t, tmp, "policy.yaml", `schema:
  type: object
  required:
    - server
  properties:
    server:
      type: object
      required:
        - port
      properties:
        port:
          type: integer
          minimum: 1
          maximum: 65535
`)
	dataPath := writeFile(t, tmp, "data.yaml", "server:\n  port: 443\n")

	stdout, _, err := execute(t, policyPath, dataPath)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != msgValid+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}

	badData := writeFile(t, tmp, "bad.yaml", "server:\n  port: 70000\n")
	stdout, _, err = execute(t, policyPath, badData)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != msgInvalid+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}
