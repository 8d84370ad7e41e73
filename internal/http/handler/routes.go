package handler

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/internal/model"
	"smartrecruit/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all pipeline rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.PipelineService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/applications", CreateApplication(svc))
	app.Delete("/applications/:id", DeleteApplication(svc))
	app.Patch("/applications/:id/status", SetStatus(svc))
	app.Post("/applications/:id/interview", ScheduleInterview(svc))
	app.Post("/applications/:id/move", MoveToJob(svc))
	app.Post("/applications/:id/score", RescoreApplication(svc))
	app.Put("/applications/:id/documents/:kind", AttachDocument(svc))

	app.Post("/eligibility", CheckEligibility(svc))

	app.Post("/referrals", CreateReferral(svc))
	app.Post("/candidates/:id/notes", CreateNote(svc))
	app.Post("/reviews", CreateReview(svc))
	app.Post("/team-posts", CreateTeamPost(svc))

	app.Get("/notifications", ListNotifications(svc))
	app.Post("/notifications/:id/read", MarkNotificationRead(svc))
}

// HealthCheck reports DB connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

type createApplicationRequest struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
}

// CreateApplication admits a candidate to a job's pipeline.
func CreateApplication(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createApplicationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.JobID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid job_id format")
		}
		if _, err := uuid.Parse(req.CandidateID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid candidate_id format")
		}

		app, err := svc.CreateApplication(c.UserContext(), req.JobID, req.CandidateID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(app)
	}
}

// DeleteApplication hard-deletes an application.
func DeleteApplication(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteApplication(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves an application to a new pipeline status.
func SetStatus(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req setStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.SetStatus(c.UserContext(), id, model.Status(req.Status)); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id, "status": req.Status})
	}
}

type scheduleInterviewRequest struct {
	InterviewDate time.Time `json:"interview_date"`
}

// ScheduleInterview books an interview slot and forces the interview status.
func ScheduleInterview(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req scheduleInterviewRequest
		if err := c.BodyParser(&req); err != nil || req.InterviewDate.IsZero() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "interview_date is required")
		}
		if err := svc.ScheduleInterview(c.UserContext(), id, req.InterviewDate); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"id":             id,
			"status":         string(model.StatusInterview),
			"interview_date": req.InterviewDate,
		})
	}
}

type moveToJobRequest struct {
	JobID string `json:"job_id"`
}

// MoveToJob re-homes an application onto another job.
func MoveToJob(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req moveToJobRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.JobID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid job_id format")
		}

		moved, err := svc.MoveToJob(c.UserContext(), id, req.JobID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(moved)
	}
}

// RescoreApplication recomputes and persists the candidate-job fit score.
func RescoreApplication(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		score, err := svc.Rescore(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id, "score": score})
	}
}

type attachDocumentRequest struct {
	Path string `json:"path"`
}

// AttachDocument stores a generated-document path on an application.
func AttachDocument(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		kind := model.DocumentKind(c.Params("kind"))
		if !kind.Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT_KIND", "unknown document kind")
		}
		var req attachDocumentRequest
		if err := c.BodyParser(&req); err != nil || req.Path == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "path is required")
		}
		if err := svc.AttachDocument(c.UserContext(), id, kind, req.Path); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id, "kind": string(kind), "path": req.Path})
	}
}

type checkEligibilityRequest struct {
	JobID      string `json:"job_id"`
	ResumeText string `json:"resume_text"`
}

// CheckEligibility runs the pre-application screening for a job.
func CheckEligibility(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req checkEligibilityRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.JobID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid job_id format")
		}

		assessment, err := svc.CheckEligibility(c.UserContext(), req.JobID, req.ResumeText)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(assessment)
	}
}

// CreateReferral records an employee referral.
func CreateReferral(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ref model.Referral
		if err := c.BodyParser(&ref); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.RecordReferral(c.UserContext(), &ref)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// CreateNote records a recruiter note on a candidate.
func CreateNote(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		candidateID := c.Params("id")
		if _, err := uuid.Parse(candidateID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var note model.CandidateNote
		if err := c.BodyParser(&note); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		note.CandidateID = candidateID
		out, err := svc.RecordNote(c.UserContext(), &note)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// CreateReview records an interview review.
func CreateReview(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var review model.Review
		if err := c.BodyParser(&review); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.RecordReview(c.UserContext(), &review)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// CreateTeamPost records an internal team feed post.
func CreateTeamPost(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var post model.TeamPost
		if err := c.BodyParser(&post); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.RecordTeamPost(c.UserContext(), &post)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListNotifications lists notifications for a recipient with limit & offset.
func ListNotifications(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		targetID := c.Query("target_id")
		if targetID == "" {
			return writeError(c, fiber.StatusBadRequest, "TARGET_REQUIRED", "target_id is required")
		}

		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.Notifications(c.UserContext(), targetID, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// MarkNotificationRead flips a notification's read flag.
func MarkNotificationRead(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.MarkNotificationRead(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
