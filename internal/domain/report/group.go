package report

import (
	"time"
)

const timeOfDayFormat = "03:04:05 PM"

// GroupByDay partitions range records into per-date groups. Records must
// already be ordered date-descending, arrival-descending (the repository
// guarantees this); grouping preserves that order, so the output is
// deterministic for identical input. All three presenters (JSON, spreadsheet,
// document) consume this single structure and never re-derive grouping.
func GroupByDay(records []RangeRecord, loc *time.Location) []DayGroup {
	var groups []DayGroup

	for _, rec := range records {
		date := rec.Date.Format("2006-01-02")
		row := toRow(rec, loc)

		if n := len(groups); n > 0 && groups[n-1].Date == date {
			groups[n-1].Records = append(groups[n-1].Records, row)
			continue
		}
		groups = append(groups, DayGroup{
			Date:    date,
			Records: []AttendanceRow{row},
		})
	}

	return groups
}

func toRow(rec RangeRecord, loc *time.Location) AttendanceRow {
	row := AttendanceRow{
		EmployeeCode:  rec.EmployeeCode,
		EmployeeName:  rec.EmployeeName,
		ArrivedAtTime: rec.ArrivedAt.In(loc).Format(timeOfDayFormat),
		arrivedAt:     rec.ArrivedAt,
		leftAt:        rec.LeftAt,
	}
	if rec.LeftAt != nil {
		leftAtTime := rec.LeftAt.In(loc).Format(timeOfDayFormat)
		row.LeftAtTime = &leftAtTime
	}
	return row
}

// Flatten turns day groups into export rows, one per record, keeping the
// group order. Timestamps are rendered in full so exports carry the date
// alongside the time of day.
func Flatten(groups []DayGroup, loc *time.Location) []ExportRow {
	var rows []ExportRow

	for _, group := range groups {
		for _, rec := range group.Records {
			row := ExportRow{
				Date:         group.Date,
				EmployeeCode: rec.EmployeeCode,
				EmployeeName: rec.EmployeeName,
				ArrivedAt:    rec.arrivedAt.In(loc).Format("2006-01-02 15:04:05"),
			}
			if rec.leftAt != nil {
				row.LeftAt = rec.leftAt.In(loc).Format("2006-01-02 15:04:05")
			}
			rows = append(rows, row)
		}
	}

	return rows
}
