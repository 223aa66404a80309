package session

import "errors"

// Session domain errors
var (
	// Import errors
	ErrNoFile          = errors.New("no file uploaded")
	ErrEmptySheet      = errors.New("worksheet is empty")
	ErrNoWorksheet     = errors.New("no worksheet found")
	ErrMultipleSheets  = errors.New("multiple worksheets found; upload a file with a single sheet")
	ErrMissingColumns  = errors.New("required columns missing (Name, Log In, Log Out, date)")
	ErrUnsupportedFile = errors.New("unsupported file type; upload .xlsx or .xls")
)
