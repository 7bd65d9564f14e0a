package school

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns a collection's documents in its display order, serialized for
// clients. A limit of 0 returns all matching documents.
func (svc *Service) List(ctx context.Context, collection string, limit int64) ([]Document, error) {
	docs, err := svc.store.FindDocuments(ctx, collection, Filter{}, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying "+collection)
	}

	docs = Order(collection, docs)
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		serialized, err := Serialize(doc)
		if err != nil {
			return nil, errors.Wrap(err, "serializing "+collection+" document")
		}
		out = append(out, serialized)
	}
	return out, nil
}

// CollectionNames lists the collections present in the store.
func (svc *Service) CollectionNames(ctx context.Context) ([]string, error) {
	return svc.store.CollectionNames(ctx)
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (Document, error) {
	// email uniqueness is intended but not enforced by the store; callers own it
	return svc.create(ctx, CollectionStudent, Student{
		Name:       ns.Name,
		Email:      ns.Email,
		GradeLevel: ns.GradeLevel,
		AvatarURL:  ns.AvatarURL,
	})
}

func (svc *Service) CreateLesson(ctx context.Context, nl NewLesson) (Document, error) {
	return svc.create(ctx, CollectionLesson, Lesson{
		Title:       nl.Title,
		Subject:     nl.Subject,
		Teacher:     nl.Teacher,
		Description: nl.Description,
		Date:        nl.Date.UTC(),
		Resources:   nl.Resources,
	})
}

func (svc *Service) CreateScheduleItem(ctx context.Context, nsi NewScheduleItem) (Document, error) {
	return svc.create(ctx, CollectionScheduleItem, ScheduleItem{
		Day:       nsi.Day,
		StartTime: nsi.StartTime,
		EndTime:   nsi.EndTime,
		Subject:   nsi.Subject,
		Room:      nsi.Room,
	})
}

func (svc *Service) CreateGrade(ctx context.Context, ng NewGrade) (Document, error) {
	return svc.create(ctx, CollectionGrade, Grade{
		Subject:    ng.Subject,
		Assignment: ng.Assignment,
		Score:      ng.Score,
		Total:      ng.Total,
		Letter:     ng.Letter,
		Date:       ng.Date.UTC(),
	})
}

func (svc *Service) CreateAssessment(ctx context.Context, na NewAssessment) (Document, error) {
	status := na.Status
	if status == "" {
		status = AssessmentStatusUpcoming
	}
	return svc.create(ctx, CollectionAssessment, Assessment{
		Title:   na.Title,
		Subject: na.Subject,
		Type:    na.Type,
		DueDate: na.DueDate.UTC(),
		Status:  status,
	})
}

func (svc *Service) CreateFeedPost(ctx context.Context, nfp NewFeedPost) (Document, error) {
	return svc.create(ctx, CollectionFeedPost, FeedPost{
		AuthorName:   nfp.AuthorName,
		AuthorAvatar: nfp.AuthorAvatar,
		Text:         nfp.Text,
		ImageURL:     nfp.ImageURL,
		CreatedAt:    time.Now().UTC(),
	})
}

// create inserts doc and returns the stored document as clients will see it.
func (svc *Service) create(ctx context.Context, collection string, doc interface{}) (Document, error) {
	id, err := svc.store.InsertDocument(ctx, collection, doc)
	if err != nil {
		return nil, errors.Wrap(err, "inserting into "+collection)
	}

	stored, err := svc.store.GetDocumentByID(ctx, collection, id)
	if err != nil {
		return nil, errors.Wrap(err, "fetching inserted "+collection+" document")
	}
	return Serialize(stored)
}
