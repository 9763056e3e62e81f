package job

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/metrics"
)

// StatsJob periodically refreshes the board and task count gauges.
type StatsJob struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	logger  *zap.Logger
	cron    *cron.Cron
}

func NewStatsJob(db *gorm.DB, m *metrics.Metrics, logger *zap.Logger) *StatsJob {
	return &StatsJob{
		db:      db,
		metrics: m,
		logger:  logger,
		cron:    cron.New(),
	}
}

// Start refreshes the gauges once, then schedules a refresh every minute.
func (j *StatsJob) Start() error {
	j.refresh()

	if _, err := j.cron.AddFunc("@every 1m", j.refresh); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("Stats job started")
	return nil
}

func (j *StatsJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Stats job stopped")
}

func (j *StatsJob) refresh() {
	var boards int64
	if err := j.db.Model(&domain.Board{}).Count(&boards).Error; err != nil {
		j.logger.Warn("Failed to count boards", zap.Error(err))
	} else {
		j.metrics.SetBoardsTotal(boards)
	}

	var tasks int64
	if err := j.db.Model(&domain.Task{}).Count(&tasks).Error; err != nil {
		j.logger.Warn("Failed to count tasks", zap.Error(err))
	} else {
		j.metrics.SetTasksTotal(tasks)
	}
}
