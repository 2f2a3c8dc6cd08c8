// Package lsp serves balance diagnostics over the Language Server
// Protocol: every open, change, or save re-scans the document and
// publishes a warning for each line where a delimiter counter is
// negative.
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/braces/balance"
)

const lsName = "braces"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	log     commonlog.Logger
	version string
}

func NewServer(version string, debug bool) *Server {
	ls := &Server{
		log:     commonlog.GetLogger(lsName),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, debug)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full sync is negotiated, so the last change carries the document.
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	result, err := balance.ScanFile(path)
	if err != nil {
		ls.log.Errorf("rescan %s: %v", path, err)
		return nil
	}
	ls.notify(ctx, params.TextDocument.URI, Diagnostics(result))
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.notify(ctx, params.TextDocument.URI, nil)
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	result, err := balance.Scan(strings.NewReader(text))
	if err != nil {
		ls.log.Errorf("scan %s: %v", uri, err)
		return
	}
	ls.notify(ctx, uri, Diagnostics(result))
}

func (ls *Server) notify(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ls.log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnostics maps each problem line of a scan to a full-line warning.
func Diagnostics(result *balance.Result) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityWarning
	source := lsName

	var diagnostics []protocol.Diagnostic
	for _, p := range result.Problems {
		line := protocol.UInteger(p.Line - 1)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line, Character: protocol.UInteger(len(p.Text))},
			},
			Severity: &severity,
			Source:   &source,
			Message:  fmt.Sprintf("delimiter balance goes negative: braces=%d, parens=%d", p.Braces, p.Parens),
		})
	}
	return diagnostics
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
