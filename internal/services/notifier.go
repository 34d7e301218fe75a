package services

import (
	"context"

	"github.com/openhire/jobboard/internal/models"
	"go.uber.org/zap"
)

// Notifier receives application activity. Actual delivery (email, webhooks)
// is an external collaborator; this service only raises the event.
type Notifier interface {
	ApplicationReceived(ctx context.Context, job *models.Job, app *models.Application)
}

// LogNotifier is the default Notifier: it records the event and nothing else.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) ApplicationReceived(ctx context.Context, job *models.Job, app *models.Application) {
	n.Logger.Info("application received",
		zap.String("job_id", job.UUID),
		zap.String("job_title", job.Title),
		zap.Uint("application_id", app.ID),
	)
}
