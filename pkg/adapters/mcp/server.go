package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/fsacheck"
	"github.com/aretw0/fsacheck/internal/compiler"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/report"
)

// RulesURI is the resource describing the checks performed by the validator.
const RulesURI = "fsacheck://rules"

// Validator defines the interface required by the MCP server.
type Validator interface {
	Validate(ctx context.Context, decl domain.Declarations) *report.Report
}

// ValidateArgs are the arguments of the validate_fsa tool.
type ValidateArgs struct {
	Document string `mapstructure:"document"`
	Format   string `mapstructure:"format"`
}

// Server exposes the validator as an MCP Server.
type Server struct {
	validator Validator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(v Validator) *Server {
	s := &Server{
		validator: v,
		mcpServer: server.NewMCPServer("fsacheck-mcp", strings.TrimSpace(fsacheck.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_fsa",
		mcp.WithDescription("Validate a finite-state automaton description. "+
			"Returns either a single fatal error or a completeness verdict with sorted warnings."),
		mcp.WithString("document", mcp.Required(),
			mcp.Description("Declaration document, e.g. \"states=[a,b]\\nalpha=[0]\\ninit.st=[a]\\nfin.st=[b]\\ntrans=[a>0>b]\"")),
		mcp.WithString("format", mcp.Description("Document syntax: \"text\" (default) or \"yaml\"")),
		mcp.WithOutputSchema[report.Document](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (report.Document, error) {
	var in ValidateArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return report.Document{}, fmt.Errorf("invalid arguments: %w", err)
	}

	name := "document.txt"
	switch in.Format {
	case "", string(compiler.FormatText):
	case string(compiler.FormatYAML):
		name = "document.yaml"
	default:
		return report.Document{}, fmt.Errorf("unsupported format %q", in.Format)
	}

	decl, err := compiler.Parse(name, []byte(in.Document))
	if err != nil {
		return report.Failed(err).Document(), nil
	}
	return s.validator.Validate(ctx, decl).Document(), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(RulesURI, "Validation Rules",
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      RulesURI,
				MIMEType: "text/markdown",
				Text:     Rules(),
			},
		}, nil
	})
}

// Rules documents the declaration syntax, fatal errors and warnings.
func Rules() string {
	var sb strings.Builder
	sb.WriteString("# FSA validation rules\n\n")
	sb.WriteString("Declarations, in this order: ")
	sb.WriteString("`" + strings.Join(domain.Groups(), "`, `") + "`.\n\n")
	sb.WriteString("## Fatal errors\n\n")
	for _, err := range []error{
		domain.UnknownState("s"),
		domain.DisjointStates(domain.Transition{}),
		domain.UnknownSymbol("a"),
		domain.EmptyRequiredGroup(domain.GroupInitial),
		domain.MalformedInput(),
		domain.EmptyRequiredGroup(domain.GroupStates),
		domain.EmptyRequiredGroup(domain.GroupAlphabet),
		domain.DuplicateState("s"),
		domain.DuplicateSymbol("a"),
		domain.InitialAlreadySet("s"),
		domain.DuplicateTransition(domain.Transition{}),
	} {
		sb.WriteString("- " + strings.ReplaceAll(err.Error(), "\n", " ") + "\n")
	}
	sb.WriteString("\n## Warnings\n\n")
	for _, w := range []domain.Warning{
		domain.WarnNoAcceptingState,
		domain.WarnUnreachable,
		domain.WarnNondeterministic,
	} {
		sb.WriteString("- " + w.String() + "\n")
	}
	return sb.String()
}
