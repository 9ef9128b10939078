package services

import (
	"time"

	"github.com/borantia/backend/internal/config"
	"github.com/borantia/backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SchedulerService runs the nightly maintenance jobs: closing postings whose
// end date has passed and pruning old system logs.
type SchedulerService struct {
	db            *gorm.DB
	postings      *PostingService
	systemLogs    *SystemLogService
	retentionDays int
	cronScheduler *cron.Cron
}

func NewSchedulerService(db *gorm.DB, cfg *config.LogConfig) *SchedulerService {
	return &SchedulerService{
		db:            db,
		postings:      NewPostingService(db),
		systemLogs:    NewSystemLogService(db),
		retentionDays: cfg.RetentionDays,
	}
}

func (s *SchedulerService) Start() {
	s.cronScheduler = cron.New()

	// Shortly past midnight so postings close on the day after their end date.
	if _, err := s.cronScheduler.AddFunc("5 0 * * *", s.runCloseExpired); err != nil {
		logger.Errorf("scheduler: failed to register posting close job: %v", err)
	}
	if _, err := s.cronScheduler.AddFunc("30 3 * * *", s.runLogCleanup); err != nil {
		logger.Errorf("scheduler: failed to register log cleanup job: %v", err)
	}

	s.cronScheduler.Start()
	logger.Info().Msg("scheduler started")

	// Catch up on anything missed while the server was down.
	go s.runCloseExpired()
}

func (s *SchedulerService) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *SchedulerService) runCloseExpired() {
	closed, err := s.postings.CloseExpired(time.Now())
	if err != nil {
		logger.Errorf("scheduler: failed to close expired postings: %v", err)
		return
	}
	if closed > 0 {
		logger.Infof("scheduler: closed %d expired postings", closed)
	}
}

func (s *SchedulerService) runLogCleanup() {
	if s.retentionDays <= 0 {
		return
	}
	deleted, err := s.systemLogs.CleanupOldLogs(s.retentionDays)
	if err != nil {
		logger.Errorf("scheduler: failed to cleanup system logs: %v", err)
		return
	}
	if deleted > 0 {
		logger.Infof("scheduler: cleaned up %d logs older than %d days", deleted, s.retentionDays)
	}
}
