package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/school"
)

// default listing limits; 0 means no limit
const (
	defaultFeedLimit       = 20
	defaultLessonLimit     = 50
	defaultGradeLimit      = 100
	defaultAssessmentLimit = 50
	defaultStudentLimit    = 50
)

var errInvalidLimit = echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")

type schoolApi struct {
	svc *school.Service
}

func registerSchoolAPI(app *echo.Echo, svc *school.Service) {
	api := schoolApi{svc: svc}

	g := app.Group("/api")
	g.GET("/feed", api.listFeed)
	g.POST("/feed", api.createFeedPost)
	g.GET("/schedule", api.listSchedule)
	g.POST("/schedule", api.createScheduleItem)
	g.GET("/lessons", api.listLessons)
	g.POST("/lessons", api.createLesson)
	g.GET("/grades", api.listGrades)
	g.POST("/grades", api.createGrade)
	g.GET("/assessments", api.listAssessments)
	g.POST("/assessments", api.createAssessment)
	g.GET("/students", api.listStudents)
	g.POST("/students", api.createStudent)

	app.GET("/test", api.storeStatus)
	app.POST("/seed", api.seed)
}

// Listing handlers

func (api *schoolApi) listFeed(ctx echo.Context) error {
	return api.list(ctx, school.CollectionFeedPost, defaultFeedLimit)
}

func (api *schoolApi) listSchedule(ctx echo.Context) error {
	return api.list(ctx, school.CollectionScheduleItem, 0)
}

func (api *schoolApi) listLessons(ctx echo.Context) error {
	return api.list(ctx, school.CollectionLesson, defaultLessonLimit)
}

func (api *schoolApi) listGrades(ctx echo.Context) error {
	return api.list(ctx, school.CollectionGrade, defaultGradeLimit)
}

func (api *schoolApi) listAssessments(ctx echo.Context) error {
	return api.list(ctx, school.CollectionAssessment, defaultAssessmentLimit)
}

func (api *schoolApi) listStudents(ctx echo.Context) error {
	return api.list(ctx, school.CollectionStudent, defaultStudentLimit)
}

func (api *schoolApi) list(ctx echo.Context, collection string, defaultLimit int64) error {
	limit := defaultLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return errInvalidLimit
		}
		limit = parsed
	}

	docs, err := api.svc.List(ctx.Request().Context(), collection, limit)
	if err != nil {
		return errors.Wrap(err, "listing "+collection)
	}
	return ctx.JSON(http.StatusOK, docs)
}

// Creation handlers

func (api *schoolApi) createFeedPost(ctx echo.Context) error {
	var data school.NewFeedPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedPost")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.CreateFeedPost(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating feed post")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *schoolApi) createScheduleItem(ctx echo.Context) error {
	var data school.NewScheduleItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewScheduleItem")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.CreateScheduleItem(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating schedule item")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *schoolApi) createLesson(ctx echo.Context) error {
	var data school.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.CreateLesson(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating lesson")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *schoolApi) createGrade(ctx echo.Context) error {
	var data school.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.CreateGrade(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *schoolApi) createAssessment(ctx echo.Context) error {
	var data school.NewAssessment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssessment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.CreateAssessment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assessment")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *schoolApi) createStudent(ctx echo.Context) error {
	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.CreateStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

// Diagnostics

type storeStatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (api *schoolApi) storeStatus(ctx echo.Context) error {
	res := storeStatusResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		DatabaseURLSet:   core.Conf.GetString("databaseUrl") != "",
		DatabaseNameSet:  core.Conf.GetString("databaseName") != "",
		Collections:      []string{},
	}

	names, err := api.svc.CollectionNames(ctx.Request().Context())
	switch errors.Cause(err) {
	case nil:
		res.Database = "connected"
		res.ConnectionStatus = "connected"
		if len(names) > 10 {
			names = names[:10]
		}
		res.Collections = names
	case school.ErrStoreUnavailable:
		// report the defaults; this endpoint never fails
	default:
		res.Database = "error: " + err.Error()
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *schoolApi) seed(ctx echo.Context) error {
	seeded, err := api.svc.Seed(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "seeding demo content")
	}

	msg := "Already seeded"
	if seeded {
		msg = "Seeded demo content"
	}
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok", "message": msg})
}
