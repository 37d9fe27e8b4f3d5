package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailySalesReportJob computes the previous day's sales summary every morning
// and writes it to the log. Runs at 06:00 server time.
type DailySalesReportJob struct {
	handler queries.GetSalesReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewDailySalesReportJob creates a new job for the daily sales summary.
func NewDailySalesReportJob(handler queries.GetSalesReportQueryHandler, logger *slog.Logger) *DailySalesReportJob {
	return &DailySalesReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "daily_sales_report_job"),
		now:     time.Now,
	}
}

// Start schedules the job to run daily at 06:00.
func (j *DailySalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales report job started (running at 06:00)")
	return nil
}

// Run executes one report cycle for yesterday's date. Exposed so the
// composition root can trigger an immediate run on demand.
func (j *DailySalesReportJob) Run() {
	ctx := context.Background()

	yesterday := j.now().AddDate(0, 0, -1).Format("2006-01-02")
	query, err := queries.NewGetSalesReportQuery(&yesterday, &yesterday)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build sales report query", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		// A quiet day is expected, not a system issue.
		if errors.Is(err, queries.ErrNoData) {
			j.logger.InfoContext(ctx, "No confirmed orders yesterday", "date", yesterday)
			return
		}
		j.logger.ErrorContext(ctx, "Daily sales report failed", "date", yesterday, "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily sales report",
		"date", yesterday,
		"revenue", report.Revenue.String(),
		"order_count", report.OrderCount,
		"top_customers", len(report.TopCustomers),
	)
}

// Stop stops the daily sales report job.
func (j *DailySalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily sales report job stopped")
}
