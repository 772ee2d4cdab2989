package dtr

import (
	"sort"
	"strings"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// Layer identifies one overlay source of the merger.
type Layer int

const (
	LayerAttendance Layer = iota
	LayerTimeAdjustment
	LayerLeave
)

func (l Layer) String() string {
	switch l {
	case LayerAttendance:
		return "attendance"
	case LayerTimeAdjustment:
		return "time_adjustment"
	case LayerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// OverlayOrder is the precedence of overlays, lowest first. A later layer overwrites
// the fields it carries on the same day. Approved schedule adjustments are applied
// after all layers.
var OverlayOrder = []Layer{LayerAttendance, LayerTimeAdjustment, LayerLeave}

// Layers holds the normalized records of each overlay source.
type Layers map[Layer][]DayRecord

// Merge overlays every layer onto a copy of the skeleton, then annotates days that
// carry an approved schedule adjustment of userID. The result is ordered by date, most
// recent first. Overlay records dated outside the skeleton are appended as their own
// entries, built from the schedule r resolves for that date; schedule adjustments only
// annotate existing days.
func Merge(userID string, r *Resolver, skeleton []dtr.DayLedgerEntry, layers Layers, adjustments []schedule.Adjustment) []dtr.DayLedgerEntry {
	entries := make([]dtr.DayLedgerEntry, len(skeleton))
	copy(entries, skeleton)

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Date] = i
	}

	at := func(date string) *dtr.DayLedgerEntry {
		if i, ok := index[date]; ok {
			return &entries[i]
		}
		entry := dtr.DayLedgerEntry{Date: date, Weekday: clock.WeekdayName(date), UserID: userID}
		if day, err := clock.ParseDate(date); err == nil {
			entry = dayEntry(userID, day, r)
		}
		entries = append(entries, entry)
		index[date] = len(entries) - 1
		return &entries[len(entries)-1]
	}

	for _, layer := range OverlayOrder {
		for _, record := range layers[layer] {
			entry := at(record.Day())
			record.Apply(entry)
			entry.IsAbsent = false
		}
	}

	for _, adj := range adjustments {
		if adj.UserID != userID {
			continue
		}
		i, ok := index[clock.FormatDate(adj.Date)]
		if !ok {
			continue
		}
		entry := &entries[i]
		entry.WorkShift = formatShift(adj.TimeIn, adj.TimeOut)
		if entry.IsScheduleAdjusted {
			continue
		}
		entry.IsScheduleAdjusted = true
		if !strings.HasSuffix(entry.Remarks, dtr.ScheduleAdjustedSuffix) {
			entry.Remarks += dtr.ScheduleAdjustedSuffix
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries
}
