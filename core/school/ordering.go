package school

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// weekdayIndex maps lowercased weekday names to their display position,
// Monday first. Unrecognized or missing names fall through to weekdayUnknown
// and sort after Sunday.
var weekdayIndex = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

const weekdayUnknown = 7

// WeekdayIndex returns the display position of a weekday name, case-insensitively.
func WeekdayIndex(day string) int {
	if idx, ok := weekdayIndex[strings.ToLower(strings.TrimSpace(day))]; ok {
		return idx
	}
	return weekdayUnknown
}

// Order sorts docs in place using the collection's display order and returns
// the slice. The sort is stable: documents comparing equal keep their
// store-provided relative order. Collections without a defined order are
// returned untouched.
//
// A document missing its date-like sort key compares as the zero time: it
// sorts last in the descending feed/lesson/grade listings and first in the
// ascending assessment listing. That asymmetry matches the long-standing
// behavior clients render against.
func Order(collection string, docs []Document) []Document {
	switch collection {
	case CollectionFeedPost:
		sortByTime(docs, "created_at", true /* descending */)
	case CollectionLesson:
		sortByTime(docs, "date", true /* descending */)
	case CollectionGrade:
		sortByTime(docs, "date", true /* descending */)
	case CollectionAssessment:
		sortByTime(docs, "due_date", false)
	case CollectionScheduleItem:
		sortSchedule(docs)
	}
	return docs
}

func sortByTime(docs []Document, field string, descending bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		ti, tj := docTime(docs[i], field), docTime(docs[j], field)
		if descending {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
}

// sortSchedule orders schedule items by (weekday index, start_time).
// "HH:MM" strings compare correctly lexicographically.
func sortSchedule(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		di, dj := WeekdayIndex(docString(docs[i], "day")), WeekdayIndex(docString(docs[j], "day"))
		if di != dj {
			return di < dj
		}
		return docString(docs[i], "start_time") < docString(docs[j], "start_time")
	})
}

func docTime(doc Document, field string) time.Time {
	switch v := doc[field].(type) {
	case time.Time:
		return v
	case primitive.DateTime:
		return v.Time()
	}
	return time.Time{}
}

func docString(doc Document, field string) string {
	if s, ok := doc[field].(string); ok {
		return s
	}
	return ""
}
