package services

import (
	"fmt"

	"kardash_backend/internal/email"
	"kardash_backend/internal/logger"
	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/services/dto"
	"kardash_backend/pkg/apperrors"
)

type JobService interface {
	Create(callerID string, req *dto.CreateJobRequest) (*dto.JobDTO, error)
	GetByID(jobID string) (*dto.JobDTO, error)
	List(query *dto.ListJobsQuery) ([]dto.JobDTO, error)
	ListAvailable(query *dto.ListAvailableJobsQuery) ([]dto.JobDTO, error)
	ListMy(userID string) ([]dto.JobDTO, error)
	Update(callerID string, callerRole models.UserRole, jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error)
	Delete(callerID string, callerRole models.UserRole, jobID string) error

	Apply(callerID, jobID string, req *dto.ApplyJobRequest) (*dto.ApplicationDTO, error)
	ListApplications(callerID string, callerRole models.UserRole, jobID string) ([]dto.ApplicationDTO, error)
	Assign(callerID string, callerRole models.UserRole, jobID string, req *dto.AssignJobRequest) (*dto.JobDTO, error)
	Deliver(callerID, jobID string, req *dto.DeliverJobRequest) (*dto.JobDTO, error)
	Complete(callerID string, callerRole models.UserRole, jobID string, req *dto.CompleteJobRequest) (*dto.CompleteJobResponse, error)
	Cancel(jobID string) (*dto.JobDTO, error)
}

type JobServiceImpl struct {
	jobRepo       repositories.JobRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, emailProvider email.Provider) JobService {
	return &JobServiceImpl{
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *JobServiceImpl) Create(callerID string, req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	job := &models.Job{
		Title:                 req.Title,
		Description:           req.Description,
		Budget:                req.Budget,
		Platform:              req.Platform,
		Status:                models.JobStatusAvailable,
		Type:                  req.Type,
		Tags:                  req.Tags,
		Deadline:              req.Deadline,
		OriginalPlatformJobID: req.OriginalPlatformJobID,
		BotAccountID:          req.BotAccountID,
		EstimatedHours:        req.EstimatedHours,
		ClientRating:          req.ClientRating,
		IsUrgent:              req.IsUrgent,
		UserID:                callerID,
	}
	if req.Urgency != "" {
		job.Urgency = req.Urgency
	}
	if req.CommissionRate != nil {
		job.CommissionRate = *req.CommissionRate
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job created", "job_id", job.ID, "platform", job.Platform, "budget", job.Budget)

	d := dto.NewJobDTO(job)
	return &d, nil
}

func (s *JobServiceImpl) GetByID(jobID string) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	d := dto.NewJobDTO(job)
	return &d, nil
}

func (s *JobServiceImpl) List(query *dto.ListJobsQuery) ([]dto.JobDTO, error) {
	filter := repositories.JobFilter{
		Status:   models.JobStatus(query.Status),
		Platform: query.Platform,
		Search:   query.Search,
		JobType:  query.Type,
		SortBy:   query.SortBy,
		Skip:     query.Skip,
		Limit:    query.Limit,
	}

	jobs, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobDTOs(jobs), nil
}

// ListAvailable - публичная витрина открытых работ для фрилансеров.
func (s *JobServiceImpl) ListAvailable(query *dto.ListAvailableJobsQuery) ([]dto.JobDTO, error) {
	filter := repositories.JobFilter{
		Status:     models.JobStatusAvailable,
		Search:     query.Search,
		UrgentOnly: query.FilterType == "urgent",
		SortBy:     query.SortBy,
		Skip:       query.Skip,
		Limit:      query.Limit,
	}

	jobs, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobDTOs(jobs), nil
}

func (s *JobServiceImpl) ListMy(userID string) ([]dto.JobDTO, error) {
	jobs, err := s.jobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobDTOs(jobs), nil
}

// Update разрешен создателю и админу, пока работа не в терминальном статусе.
func (s *JobServiceImpl) Update(callerID string, callerRole models.UserRole, jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID != callerID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if job.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidOperation("job", fmt.Sprintf("Cannot update job in '%s' status", job.Status))
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if req.Platform != nil {
		fields["platform"] = *req.Platform
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.Urgency != nil {
		fields["urgency"] = *req.Urgency
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}
	if req.CommissionRate != nil {
		fields["commission_rate"] = *req.CommissionRate
	}
	if req.IsUrgent != nil {
		fields["is_urgent"] = *req.IsUrgent
	}

	if len(fields) > 0 {
		if err := s.jobRepo.UpdateFields(jobID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(jobID)
}

func (s *JobServiceImpl) Delete(callerID string, callerRole models.UserRole, jobID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}

	if job.UserID != callerID && callerRole != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("job deleted", "job_id", jobID, "by", callerID)
	return nil
}

// Apply - отклик фрилансера на доступную работу.
// Ставка по умолчанию: 90% бюджета.
func (s *JobServiceImpl) Apply(callerID, jobID string, req *dto.ApplyJobRequest) (*dto.ApplicationDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobStatusAvailable {
		return nil, apperrors.ErrJobNotOpen
	}

	bid := job.Budget * 0.9
	if req.BidAmount != nil {
		bid = *req.BidAmount
	}

	app := &models.JobApplication{
		JobID:     jobID,
		UserID:    callerID,
		Proposal:  req.Proposal,
		BidAmount: bid,
		Status:    models.ApplicationStatusPending,
	}

	if err := s.jobRepo.CreateApplication(app); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job application created", "job_id", jobID, "user_id", callerID, "bid", bid)

	d := dto.NewApplicationDTO(app)
	return &d, nil
}

func (s *JobServiceImpl) ListApplications(callerID string, callerRole models.UserRole, jobID string) ([]dto.ApplicationDTO, error) {
	job, err := s.jobRepo.FindByIDWithApplications(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.UserID != callerID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	result := make([]dto.ApplicationDTO, 0, len(job.Applications))
	for i := range job.Applications {
		result = append(result, dto.NewApplicationDTO(&job.Applications[i]))
	}
	return result, nil
}

// Assign принимает заявку и назначает фрилансера на работу.
func (s *JobServiceImpl) Assign(callerID string, callerRole models.UserRole, jobID string, req *dto.AssignJobRequest) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID != callerID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if job.Status != models.JobStatusAvailable {
		return nil, apperrors.ErrInvalidJobStatus(string(models.JobStatusAvailable), string(job.Status))
	}

	app, err := s.jobRepo.FindApplicationByID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if app.JobID != jobID {
		return nil, apperrors.ErrInvalidOperation("job", "Application does not belong to this job")
	}

	if err := s.jobRepo.Assign(jobID, app.ID, app.UserID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrApplicationNotFound):
			return nil, apperrors.ErrNotFound(err, "job", "Application not found")
		case apperrors.Is(err, repositories.ErrJobStateChanged):
			return nil, apperrors.ErrInvalidJobStatus(string(models.JobStatusAvailable), string(job.Status))
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	logger.Info("job assigned", "job_id", jobID, "freelancer_id", app.UserID, "application_id", app.ID)
	return s.GetByID(jobID)
}

// Deliver - назначенный фрилансер сдает результат.
func (s *JobServiceImpl) Deliver(callerID, jobID string, req *dto.DeliverJobRequest) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.AssignedToUserID == nil || *job.AssignedToUserID != callerID {
		return nil, apperrors.ErrJobNotAssignedToCaller
	}
	if job.Status != models.JobStatusInProgress {
		return nil, apperrors.ErrInvalidJobStatus(string(models.JobStatusInProgress), string(job.Status))
	}

	fields := map[string]interface{}{
		"status":             models.JobStatusDelivered,
		"delivery_notes":     req.DeliveryNotes,
		"delivery_files_url": req.DeliveryFilesURL,
	}
	if err := s.jobRepo.UpdateFields(jobID, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job delivered", "job_id", jobID, "freelancer_id", callerID)
	return s.GetByID(jobID)
}

// Complete - приемка сданной работы. Выплата фрилансеру считается как
// бюджет минус комиссия, начисление и уведомление идут одной транзакцией.
func (s *JobServiceImpl) Complete(callerID string, callerRole models.UserRole, jobID string, req *dto.CompleteJobRequest) (*dto.CompleteJobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID != callerID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if job.Status != models.JobStatusDelivered {
		return nil, apperrors.ErrInvalidJobStatus(string(models.JobStatusDelivered), string(job.Status))
	}

	payment := job.Budget * (1 - job.EffectiveCommissionRate())

	var notification *models.Notification
	if job.AssignedToUserID != nil {
		notification = &models.Notification{
			UserID:  *job.AssignedToUserID,
			Type:    "job_completed",
			Message: fmt.Sprintf("Your job '%s' was completed. Earned: $%.2f", job.Title, payment),
		}
	}

	if err := s.jobRepo.Complete(job, payment, notification); err != nil {
		if apperrors.Is(err, repositories.ErrJobStateChanged) {
			return nil, apperrors.ErrInvalidJobStatus(string(models.JobStatusDelivered), string(job.Status))
		}
		return nil, apperrors.InternalError(err)
	}

	extra := map[string]interface{}{}
	if req.ClientFeedback != "" {
		extra["client_feedback"] = req.ClientFeedback
	}
	if req.FreelancerRating != nil {
		extra["freelancer_rating"] = *req.FreelancerRating
	}
	if len(extra) > 0 {
		if err := s.jobRepo.UpdateFields(jobID, extra); err != nil {
			logger.WithError(err).Warn("failed to store completion feedback", "job_id", jobID)
		}
	}

	logger.Info("job completed", "job_id", jobID, "payment", payment)

	s.notifyCompletionByEmail(job, payment)

	updated, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	return &dto.CompleteJobResponse{
		Job:     *updated,
		Payment: payment,
		Message: "Job completed successfully",
	}, nil
}

// Cancel переводит работу в cancelled (только админ, роут закрыт middleware).
func (s *JobServiceImpl) Cancel(jobID string) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidOperation("job", fmt.Sprintf("Cannot cancel job in '%s' status", job.Status))
	}

	if err := s.jobRepo.UpdateFields(jobID, map[string]interface{}{
		"status": models.JobStatusCancelled,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job cancelled", "job_id", jobID)
	return s.GetByID(jobID)
}

// Письмо фрилансеру после завершения. Ошибка отправки не валит запрос.
func (s *JobServiceImpl) notifyCompletionByEmail(job *models.Job, payment float64) {
	if s.emailProvider == nil || job.AssignedToUserID == nil {
		return
	}

	freelancer, err := s.userRepo.FindByID(*job.AssignedToUserID)
	if err != nil {
		logger.WithError(err).Warn("completion email skipped", "job_id", job.ID)
		return
	}

	msg := &email.Email{
		To:      []string{freelancer.Email},
		Subject: "Job completed",
		Body:    fmt.Sprintf("Your job '%s' was completed. Earned: $%.2f", job.Title, payment),
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send completion email", "job_id", job.ID)
	}
}

func (s *JobServiceImpl) findJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func toJobDTOs(jobs []models.Job) []dto.JobDTO {
	result := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		result = append(result, dto.NewJobDTO(&jobs[i]))
	}
	return result
}
