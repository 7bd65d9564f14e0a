package school

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Seed populates the store with sample content for quick demos. It reports
// whether anything was inserted: a store that already has feed content is left
// alone so repeated calls stay idempotent.
func (svc *Service) Seed(ctx context.Context) (bool, error) {
	n, err := svc.store.CountDocuments(ctx, CollectionFeedPost, Filter{})
	if err != nil {
		return false, errors.Wrap(err, "checking for existing demo content")
	}
	if n > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	for _, fixture := range demoFixtures(now) {
		if _, err = svc.store.InsertDocument(ctx, fixture.collection, fixture.doc); err != nil {
			return false, errors.Wrap(err, "seeding "+fixture.collection)
		}
	}
	return true, nil
}

type fixture struct {
	collection string
	doc        interface{}
}

func demoFixtures(now time.Time) []fixture {
	return []fixture{
		// feed
		{CollectionFeedPost, FeedPost{AuthorName: "Ms. Carter", Text: "Welcome back to the new term!", CreatedAt: now.Add(-2 * time.Hour), Likes: 12, CommentsCount: 3}},
		{CollectionFeedPost, FeedPost{AuthorName: "Sports Dept.", Text: "Tryouts start Monday. Go Blue Hawks!", CreatedAt: now.Add(-24 * time.Hour), Likes: 48, CommentsCount: 9}},
		{CollectionFeedPost, FeedPost{AuthorName: "Science Club", Text: "Lab safety workshop tomorrow.", CreatedAt: now.Add(-48 * time.Hour), Likes: 20, CommentsCount: 4}},

		// schedule (Mon-Fri)
		{CollectionScheduleItem, ScheduleItem{Day: "Monday", StartTime: "08:00", EndTime: "08:50", Subject: "Math", Room: "A101"}},
		{CollectionScheduleItem, ScheduleItem{Day: "Monday", StartTime: "09:00", EndTime: "09:50", Subject: "English", Room: "B203"}},
		{CollectionScheduleItem, ScheduleItem{Day: "Tuesday", StartTime: "10:00", EndTime: "10:50", Subject: "Chemistry", Room: "Lab 2"}},
		{CollectionScheduleItem, ScheduleItem{Day: "Wednesday", StartTime: "11:00", EndTime: "11:50", Subject: "History", Room: "C305"}},
		{CollectionScheduleItem, ScheduleItem{Day: "Thursday", StartTime: "13:00", EndTime: "13:50", Subject: "Physics", Room: "Lab 1"}},
		{CollectionScheduleItem, ScheduleItem{Day: "Friday", StartTime: "14:00", EndTime: "14:50", Subject: "Art", Room: "D110"}},

		// lessons
		{CollectionLesson, Lesson{Title: "Quadratic Functions", Subject: "Math", Teacher: "Mr. Lee", Description: "Parabolas and vertex form", Date: now.Add(-24 * time.Hour), Resources: []string{"slides.pdf", "practice.docx"}}},
		{CollectionLesson, Lesson{Title: "Poetry Analysis", Subject: "English", Teacher: "Ms. Carter", Description: "Figurative language", Date: now.Add(-48 * time.Hour), Resources: []string{"poems.pdf"}}},

		// grades
		{CollectionGrade, Grade{Subject: "Math", Assignment: "Algebra Quiz", Score: 18, Total: 20, Letter: "A", Date: now.Add(-72 * time.Hour)}},
		{CollectionGrade, Grade{Subject: "English", Assignment: "Essay Draft", Score: 45, Total: 50, Letter: "A-", Date: now.Add(-96 * time.Hour)}},

		// assessments
		{CollectionAssessment, Assessment{Title: "Chemistry Lab Report", Subject: "Chemistry", Type: "Project", DueDate: now.Add(48 * time.Hour), Status: AssessmentStatusUpcoming}},
		{CollectionAssessment, Assessment{Title: "Physics Midterm", Subject: "Physics", Type: "Exam", DueDate: now.Add(10 * 24 * time.Hour), Status: AssessmentStatusUpcoming}},
	}
}
