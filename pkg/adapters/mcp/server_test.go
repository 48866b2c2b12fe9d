package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsacheck"
)

func TestHandleValidate(t *testing.T) {
	s := NewServer(fsacheck.New())
	ctx := context.Background()

	tests := []struct {
		name    string
		args    map[string]interface{}
		verdict string
		errText string
	}{
		{
			name:    "Text Document",
			args:    map[string]interface{}{"document": "states=[a]\nalpha=[0]\ninit.st=[a]\nfin.st=[a]\ntrans=[a>0>a]"},
			verdict: "FSA is complete",
		},
		{
			name: "YAML Document",
			args: map[string]interface{}{
				"document": "states: [a, b]\nalpha: [0]\ninit.st: [a]\nfin.st: [b]\ntrans: [a>0>b]\n",
				"format":   "yaml",
			},
			verdict: "FSA is incomplete",
		},
		{
			name:    "Malformed",
			args:    map[string]interface{}{"document": "states=[a"},
			errText: "Error:\nE5: Input file is malformed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := s.handleValidate(ctx, mcp.CallToolRequest{}, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, doc.Verdict)
			assert.Equal(t, tt.errText, doc.Error)
			assert.Equal(t, tt.errText == "", doc.OK)
		})
	}
}

func TestHandleValidate_BadArguments(t *testing.T) {
	s := NewServer(fsacheck.New())

	_, err := s.handleValidate(context.Background(), mcp.CallToolRequest{},
		map[string]interface{}{"document": "x", "format": "xml"})
	assert.ErrorContains(t, err, "unsupported format")

	_, err = s.handleValidate(context.Background(), mcp.CallToolRequest{},
		map[string]interface{}{"document": []int{1}})
	assert.ErrorContains(t, err, "invalid arguments")
}

func TestRules(t *testing.T) {
	rules := Rules()
	assert.Contains(t, rules, "`states`, `alpha`, `init.st`, `fin.st`, `trans`")
	assert.Contains(t, rules, "Error: E2: Some states are disjoint")
	assert.Contains(t, rules, "W3: FSA is nondeterministic")
}
