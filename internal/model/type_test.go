package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeNode_SourcePath(t *testing.T) {
	tests := []struct {
		name        string
		node        TypeNode
		wantPackage string
		want        string
	}{
		{
			name:        "package and source file",
			node:        TypeNode{FQN: "com.acme.TypeTest", Name: "TypeTest", SourceFile: "TypeTest.java"},
			wantPackage: "com.acme",
			want:        "com/acme/TypeTest.java",
		},
		{
			name:        "nested type keeps declaring file",
			node:        TypeNode{FQN: "com.acme.Outer$Inner", Name: "Outer$Inner", SourceFile: "Outer.java"},
			wantPackage: "com.acme",
			want:        "com/acme/Outer.java",
		},
		{
			name:        "default package",
			node:        TypeNode{FQN: "TypeTest", Name: "TypeTest", SourceFile: "TypeTest.java"},
			wantPackage: "",
			want:        "TypeTest.java",
		},
		{
			name:        "missing source file falls back to name",
			node:        TypeNode{FQN: "com.acme.Generated", Name: "Generated"},
			wantPackage: "com.acme",
			want:        "com/acme/Generated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPackage, tt.node.Package())
			assert.Equal(t, tt.want, tt.node.SourcePath())
		})
	}
}
