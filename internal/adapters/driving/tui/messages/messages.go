// Package messages defines Bubbletea message types for the progress display.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// DocumentStarted is sent before a document is processed.
type DocumentStarted struct {
	Index    int
	Total    int
	Document domain.Document
}

// DocumentDone is sent after a document was processed.
type DocumentDone struct {
	Index int
	Total int
	OK    bool
}

// RunFinished is sent when the run returned, successfully or not.
type RunFinished struct {
	Err error
}

// FromProgress converts a progress event to the matching message.
func FromProgress(p domain.Progress) tea.Msg {
	if p.Done() {
		return DocumentDone{Index: p.Index, Total: p.Total, OK: p.Result.OK()}
	}
	return DocumentStarted{Index: p.Index, Total: p.Total, Document: p.Document}
}
