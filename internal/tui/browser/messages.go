// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     browser
// Description: Message types for async operations in the token browser
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package browser

import (
	"github.com/msto63/plzero/internal/report"
)

// tokensLoadedMsg is sent when the file has been scanned
type tokensLoadedMsg struct {
	listing report.Listing
	err     error
}
