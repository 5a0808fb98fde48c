package home

import (
	"github.com/abhisek/interviewprep/internal/export"
	"github.com/abhisek/interviewprep/internal/screens/responses"
)

func exportStatus(msg responses.ExportDoneMsg) (string, bool) {
	return export.StatusText(msg.Path, msg.Err)
}
