package services

import (
	"context"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/channel_utils"
	"github.com/SomSamantray/AI-Script-Creator/queue"
)

// PipelineOrchestrator runs the three chained stage queues. Stages for the
// same document execute strictly sequentially because each stage only exists
// on the next queue once its predecessor enqueued it; different documents
// run concurrently up to each queue's ceiling.
type PipelineOrchestrator struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	content    *queue.Queue
	script     *queue.Queue
	audio      *queue.Queue
	deadStore  *queue.DeadJobStore
}

func NewPipelineOrchestrator(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	content *queue.Queue,
	script *queue.Queue,
	audio *queue.Queue,
	deadStore *queue.DeadJobStore,
) *PipelineOrchestrator {
	return &PipelineOrchestrator{
		logger:     logger,
		workerPool: workerPool,
		content:    content,
		script:     script,
		audio:      audio,
		deadStore:  deadStore,
	}
}

// Start launches all queues, the dead-job retention purge and a merged
// monitoring stream over the queues' dead-job feeds.
func (o *PipelineOrchestrator) Start(ctx context.Context) error {
	o.content.Start(ctx)
	o.script.Start(ctx)
	o.audio.Start(ctx)
	o.deadStore.StartPurgeLoop(ctx, time.Hour)

	merged, err := channel_utils.MergeChannels(o.workerPool,
		o.content.DeadJobs(), o.script.DeadJobs(), o.audio.DeadJobs())
	if err != nil {
		return err
	}

	if err := o.workerPool.Submit(func() {
		for dead := range merged {
			o.logger.WarnWithFields("Pipeline job exhausted its retries", map[string]interface{}{
				"queue":       dead.Queue,
				"job_id":      dead.ID,
				"document_id": dead.DocumentID,
				"attempts":    dead.Attempts,
				"reason":      dead.Reason,
			})
		}
	}); err != nil {
		return err
	}

	o.logger.Info("Pipeline orchestrator started")
	return nil
}

func (o *PipelineOrchestrator) Stop() {
	o.content.Stop()
	o.script.Stop()
	o.audio.Stop()
}
