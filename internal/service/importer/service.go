package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/google/uuid"
)

type ImportServiceImpl struct {
	session.SessionRepository

	// Serializes imports so the delete-then-insert replace never races
	// another import. Reads are safe either way: the replace itself runs in
	// one transaction.
	mu sync.Mutex
}

func NewImportService(repo session.SessionRepository) session.ImportService {
	return &ImportServiceImpl{SessionRepository: repo}
}

// Import implements session.ImportService.
func (s *ImportServiceImpl) Import(ctx context.Context, filename string, file io.Reader) (session.ImportResult, error) {
	importID := uuid.NewString()

	data, err := io.ReadAll(file)
	if err != nil {
		return session.ImportResult{}, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := readSheet(filename, data)
	if err != nil {
		return session.ImportResult{}, err
	}

	sessions, err := Normalize(rows)
	if err != nil {
		return session.ImportResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.SessionRepository.ReplaceAll(ctx, sessions)
	if err != nil {
		return session.ImportResult{}, fmt.Errorf("failed to replace sessions: %w", err)
	}

	slog.Info("session import complete",
		"import_id", importID,
		"file", filename,
		"rows_read", len(rows)-1,
		"rows_kept", count,
	)

	return session.ImportResult{Count: int(count)}, nil
}

// Normalize reshapes raw sheet rows into session entities. The first row
// binds columns by header (trimmed, case-insensitive): Name, Log In, Log Out,
// date. A data row is kept only when all four cells are non-empty after
// trimming and the date cell parses; everything else is dropped without
// error.
func Normalize(rows [][]string) ([]session.Session, error) {
	if len(rows) == 0 {
		return nil, session.ErrEmptySheet
	}

	nameIdx, loginIdx, logoutIdx, dateIdx := -1, -1, -1, -1
	for idx, header := range rows[0] {
		switch normalizeHeader(header) {
		case "name":
			nameIdx = idx
		case "log in":
			loginIdx = idx
		case "log out":
			logoutIdx = idx
		case "date":
			dateIdx = idx
		}
	}
	if nameIdx < 0 || loginIdx < 0 || logoutIdx < 0 || dateIdx < 0 {
		return nil, session.ErrMissingColumns
	}

	sessions := make([]session.Session, 0, len(rows)-1)
	for _, r := range rows[1:] {
		employee := cellValue(r, nameIdx)
		login := cellValue(r, loginIdx)
		logout := cellValue(r, logoutIdx)
		dateCell := cellValue(r, dateIdx)
		if employee == "" || login == "" || logout == "" || dateCell == "" {
			continue
		}

		date, ok := parseCellDate(dateCell)
		if !ok {
			continue
		}

		sessions = append(sessions, session.Session{
			Employee:   employee,
			Date:       date.Truncate(24 * time.Hour),
			LoginTime:  login,
			LogoutTime: logout,
		})
	}
	return sessions, nil
}
