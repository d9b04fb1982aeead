package leaderboardservice

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	leaderboarddomain "github.com/fairway-crew/tripbot/app/modules/leaderboard/domain"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ExportResults writes the round's standings as an xlsx workbook with one row per
// player, in leaderboard order. Unstarted players appear with blank score columns so
// the sheet doubles as a roster.
func (s *LeaderboardService) ExportResults(ctx context.Context, roundID sharedtypes.RoundID, w io.Writer) error {
	snapshot, err := s.GetLeaderboard(ctx, roundID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Pos", "Player", "Tee", "Thru", "Total", "Vs Par", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("export results: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("export results: %w", err)
		}
	}

	for rowIdx, entry := range snapshot.Entries {
		values := []any{
			entry.Position,
			entry.AttendeeName,
			string(entry.TeeSelection),
			entry.HolesCompleted,
			nil,
			nil,
			status(entry),
		}
		if entry.Started() {
			values[4] = *entry.TotalScore
			values[5] = leaderboarddomain.FormatVsPar(entry.ScoreVsPar)
		}
		for colIdx, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("export results: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("export results: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export results: %w", err)
	}
	return nil
}

func status(entry leaderboarddomain.Entry) string {
	switch {
	case entry.IsCompleted:
		return "Final"
	case entry.Started():
		return "Playing"
	default:
		return "Not started"
	}
}
