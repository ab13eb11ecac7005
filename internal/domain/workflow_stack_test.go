package domain_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tia.dev/pkg/tia/internal/adapter"
	"tia.dev/pkg/tia/internal/controller"
	"tia.dev/pkg/tia/internal/domain"
	m "tia.dev/pkg/tia/internal/model"
)

const lastCommitGraph = `version: 1
types:
  - {id: com.acme.SuperType, source: SuperType.java, artifact: core}
  - {id: com.acme.Type, source: Type.java, artifact: core}
  - {id: com.acme.SubType, source: SubType.java, artifact: core}
  - {id: com.acme.TransitiveType, source: TransitiveType.java, artifact: core}
  - {id: com.acme.OtherType, source: OtherType.java, artifact: core}
  - {id: com.acme.TypeTest, source: TypeTest.java, test: true}
  - {id: com.acme.SubTypeTest, source: SubTypeTest.java, test: true, artifact: core}
  - {id: com.acme.SuperTypeTest, source: SuperTypeTest.java, test: true, artifact: core}
  - {id: com.acme.TransitiveTypeTest, source: TransitiveTypeTest.java, test: true, artifact: core}
  - {id: com.acme.OtherTypeTest, source: OtherTypeTest.java, test: true, artifact: core}
uses:
  - {from: com.acme.TypeTest, to: com.acme.Type}
  - {from: com.acme.SubTypeTest, to: com.acme.SubType}
  - {from: com.acme.SuperTypeTest, to: com.acme.SuperType}
  - {from: com.acme.TransitiveType, to: com.acme.Type}
  - {from: com.acme.TransitiveTypeTest, to: com.acme.TransitiveType}
  - {from: com.acme.OtherTypeTest, to: com.acme.OtherType}
extends:
  - {from: com.acme.SubType, to: com.acme.Type}
  - {from: com.acme.Type, to: com.acme.SuperType}
`

const lastCommitDiff = `diff --git a/core/src/main/java/com/acme/Type.java b/core/src/main/java/com/acme/Type.java
index 3b18e51..a9c2d1f 100644
--- a/core/src/main/java/com/acme/Type.java
+++ b/core/src/main/java/com/acme/Type.java
@@ -1,2 +1,2 @@
 package com.acme;
-public class Type {}
+public class Type { int x; }
`

func newStackWorkflow(out *bytes.Buffer) domain.Workflow {
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return domain.NewWorkflow(
		adapter.NewLocalGraphStore(),
		controller.NewSimpleUI(cmd),
		domain.NewChangeSetResolver(adapter.NewLocalChangeSource()),
		domain.NewEngine(),
		domain.NewEmitter(adapter.NewReportStore()),
	)
}

func TestWorkflow_Analyze_LocalStack(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.yaml")
	diffPath := filepath.Join(dir, "last-commit.diff")
	reportDir := filepath.Join(dir, "reports")

	require.NoError(t, os.WriteFile(graphPath, []byte(lastCommitGraph), 0o600))
	require.NoError(t, os.WriteFile(diffPath, []byte(lastCommitDiff), 0o600))

	var out bytes.Buffer

	err := newStackWorkflow(&out).Analyze(context.Background(), domain.AnalyzeArgs{
		Graph:   m.Path(graphPath),
		Changes: domain.ResolveArgs{DiffFile: m.Path(diffPath)},
		Report:  domain.EmitArgs{Directory: m.Path(reportDir)},
	})
	require.NoError(t, err)

	core, err := os.ReadFile(filepath.Join(reportDir, "core"))
	require.NoError(t, err)
	assert.Equal(t, "com/acme/SubTypeTest.java\ncom/acme/SuperTypeTest.java\ncom/acme/TransitiveTypeTest.java\n", string(core))

	unowned, err := os.ReadFile(filepath.Join(reportDir, domain.DefaultReportFile))
	require.NoError(t, err)
	assert.Equal(t, "com/acme/TypeTest.java\n", string(unowned))

	got := out.String()
	assert.Contains(t, got, "Changed types: 1")
	assert.Contains(t, got, "com.acme.Type\n")
	assert.Contains(t, got, "SUBTYPE")
	assert.Contains(t, got, "SUPERTYPE")
	assert.Contains(t, got, "TRANSITIVE_DIRECT")
	assert.Contains(t, got, "Impacted tests: 4")
	assert.NotContains(t, got, "OtherTypeTest")
}

func TestWorkflow_Analyze_LocalStackDryRun(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.yaml")
	reportDir := filepath.Join(dir, "reports")

	require.NoError(t, os.WriteFile(graphPath, []byte(lastCommitGraph), 0o600))

	var out bytes.Buffer

	err := newStackWorkflow(&out).Analyze(context.Background(), domain.AnalyzeArgs{
		Graph:   m.Path(graphPath),
		Changes: domain.ResolveArgs{IDs: []m.TypeID{"com.acme.SubType"}},
		Report:  domain.EmitArgs{Directory: m.Path(reportDir)},
		Include: []m.Relationship{m.Direct},
		DryRun:  true,
	})
	require.NoError(t, err)

	assert.NoDirExists(t, reportDir)
	assert.Contains(t, out.String(), "com.acme.SubTypeTest")
	assert.Contains(t, out.String(), "Impacted tests: 1")
}

func TestWorkflow_Validate_LocalStack(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.yaml")

	require.NoError(t, os.WriteFile(graphPath, []byte(lastCommitGraph), 0o600))

	var out bytes.Buffer

	require.NoError(t, newStackWorkflow(&out).Validate(context.Background(), domain.ValidateArgs{Graph: m.Path(graphPath)}))
	assert.Contains(t, out.String(), "10")
}
