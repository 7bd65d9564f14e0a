package school

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trezcool/shule/core"
)

// Collection names. Each schema struct is stored in the collection named after
// its lowercased type name.
const (
	CollectionStudent      = "student"
	CollectionLesson       = "lesson"
	CollectionScheduleItem = "scheduleitem"
	CollectionGrade        = "grade"
	CollectionAssessment   = "assessment"
	CollectionFeedPost     = "feedpost"
)

// Assessment statuses
const (
	AssessmentStatusUpcoming  = "upcoming"
	AssessmentStatusSubmitted = "submitted"
	AssessmentStatusGraded    = "graded"
)

type (
	Student struct {
		ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		Name       string             `bson:"name" json:"name"`
		Email      string             `bson:"email" json:"email"` // intended unique; not enforced by the store
		GradeLevel string             `bson:"grade_level" json:"grade_level"`
		AvatarURL  string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	}

	Lesson struct {
		ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		Title       string             `bson:"title" json:"title"`
		Subject     string             `bson:"subject" json:"subject"`
		Teacher     string             `bson:"teacher" json:"teacher"`
		Description string             `bson:"description,omitempty" json:"description,omitempty"`
		Date        time.Time          `bson:"date" json:"date"`
		Resources   []string           `bson:"resources,omitempty" json:"resources,omitempty"`
	}

	// ScheduleItem start/end times are plain "HH:MM" strings with no date component.
	ScheduleItem struct {
		ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		Day       string             `bson:"day" json:"day"`
		StartTime string             `bson:"start_time" json:"start_time"`
		EndTime   string             `bson:"end_time" json:"end_time"`
		Subject   string             `bson:"subject" json:"subject"`
		Room      string             `bson:"room,omitempty" json:"room,omitempty"`
	}

	Grade struct {
		ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		Subject    string             `bson:"subject" json:"subject"`
		Assignment string             `bson:"assignment" json:"assignment"`
		Score      float64            `bson:"score" json:"score"`
		Total      float64            `bson:"total" json:"total"`
		Letter     string             `bson:"letter,omitempty" json:"letter,omitempty"`
		Date       time.Time          `bson:"date" json:"date"`
	}

	Assessment struct {
		ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		Title   string             `bson:"title" json:"title"`
		Subject string             `bson:"subject" json:"subject"`
		Type    string             `bson:"type" json:"type"` // Quiz, Test, Project, Exam
		DueDate time.Time          `bson:"due_date" json:"due_date"`
		Status  string             `bson:"status" json:"status"`
	}

	FeedPost struct {
		ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		AuthorName    string             `bson:"author_name" json:"author_name"`
		AuthorAvatar  string             `bson:"author_avatar,omitempty" json:"author_avatar,omitempty"`
		Text          string             `bson:"text,omitempty" json:"text,omitempty"`
		ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
		CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
		Likes         int                `bson:"likes" json:"likes"`
		CommentsCount int                `bson:"comments_count" json:"comments_count"`
	}
)

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	GradeLevel string `json:"grade_level" validate:"required"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,url"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.GradeLevel = core.CleanString(ns.GradeLevel)
	return core.Validate.Struct(ns)
}

// NewLesson contains information needed to publish a new Lesson.
type NewLesson struct {
	Title       string    `json:"title" validate:"required"`
	Subject     string    `json:"subject" validate:"required"`
	Teacher     string    `json:"teacher" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Resources   []string  `json:"resources"`
}

func (nl *NewLesson) Validate() error {
	nl.Title = core.CleanString(nl.Title)
	nl.Subject = core.CleanString(nl.Subject)
	nl.Teacher = core.CleanString(nl.Teacher)
	return core.Validate.Struct(nl)
}

// NewScheduleItem contains information needed to add a ScheduleItem.
type NewScheduleItem struct {
	Day       string `json:"day" validate:"required,weekday"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
	Subject   string `json:"subject" validate:"required"`
	Room      string `json:"room"`
}

func (nsi *NewScheduleItem) Validate() error {
	nsi.Day = core.CleanString(nsi.Day)
	nsi.Subject = core.CleanString(nsi.Subject)
	nsi.Room = core.CleanString(nsi.Room)
	return core.Validate.Struct(nsi)
}

// NewGrade contains information needed to record a Grade.
type NewGrade struct {
	Subject    string    `json:"subject" validate:"required"`
	Assignment string    `json:"assignment" validate:"required"`
	Score      float64   `json:"score" validate:"min=0"`
	Total      float64   `json:"total" validate:"required,gt=0"`
	Letter     string    `json:"letter"`
	Date       time.Time `json:"date" validate:"required"`
}

func (ng *NewGrade) Validate() error {
	ng.Subject = core.CleanString(ng.Subject)
	ng.Assignment = core.CleanString(ng.Assignment)
	ng.Letter = core.CleanString(ng.Letter)
	return core.Validate.Struct(ng)
}

// NewAssessment contains information needed to schedule an Assessment.
// Status defaults to "upcoming" when left empty.
type NewAssessment struct {
	Title   string    `json:"title" validate:"required"`
	Subject string    `json:"subject" validate:"required"`
	Type    string    `json:"type" validate:"required"`
	DueDate time.Time `json:"due_date" validate:"required"`
	Status  string    `json:"status"`
}

func (na *NewAssessment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	na.Type = core.CleanString(na.Type)
	na.Status = core.CleanString(na.Status, true /* lower */)
	return core.Validate.Struct(na)
}

// NewFeedPost contains information needed to publish a FeedPost.
// The server assigns created_at and zeroes the counters.
type NewFeedPost struct {
	AuthorName   string `json:"author_name" validate:"required"`
	AuthorAvatar string `json:"author_avatar" validate:"omitempty,url"`
	Text         string `json:"text"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
}

func (nfp *NewFeedPost) Validate() error {
	nfp.AuthorName = core.CleanString(nfp.AuthorName)
	nfp.Text = core.CleanString(nfp.Text)
	return core.Validate.Struct(nfp)
}
