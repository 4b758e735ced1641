// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"stele/internal/lsp"
)

const lsName = "stele" // Name identifier for the language server

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	// 1 = debug level, nil = default backend
	commonlog.Configure(1, nil)

	steleHandler := lsp.NewSteleHandler()

	handler = protocol.Handler{
		Initialize:                     steleHandler.Initialize,
		Initialized:                    steleHandler.Initialized,
		Shutdown:                       steleHandler.Shutdown,
		SetTrace:                       steleHandler.SetTrace,
		TextDocumentDidOpen:            steleHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           steleHandler.TextDocumentDidClose,
		TextDocumentDidChange:          steleHandler.TextDocumentDidChange,
		TextDocumentCompletion:         steleHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: steleHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting %s LSP server %s...", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting stele LSP server:", err)
		os.Exit(1)
	}
}
