package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"campo/entities"
)

const sheet = "Tarefas"

// TasksXLSX renders the task list as a spreadsheet, one row per task.
func TasksXLSX(tasks []entities.Task) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Nome", "Talhão", "Início", "Término", "Observações", "Status", "Sincronização"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, hd); err != nil {
			return nil, err
		}
	}
	for row, t := range tasks {
		vals := []any{t.ID, t.Name, t.Area, t.ScheduledTime, t.EndTime, t.Observations, string(t.Status), string(t.SyncStatus)}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("row %d: %w", row+2, err)
			}
		}
	}
	return f, nil
}
