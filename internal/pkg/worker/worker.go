package worker

import (
	"errors"
	"sync"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/repository"
	"github.com/renzmar06/socialgolf-server/pkg/logger"

	"go.uber.org/zap"
)

// RedemptionTask is the write-behind record for one redemption that
// already passed the Redis capacity guard.
type RedemptionTask struct {
	PromotionID string
	Retry       int
}

// WorkerPool drains redemption tasks into Postgres asynchronously.
type WorkerPool struct {
	TaskQueue  chan RedemptionTask
	RetryQueue chan RedemptionTask
	Repo       repository.PromotionRepository
	WorkerNum  int
	MaxRetry   int

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewWorkerPool(repo repository.PromotionRepository, workerNum int, bufferSize int) *WorkerPool {
	return &WorkerPool{
		TaskQueue:  make(chan RedemptionTask, bufferSize),
		RetryQueue: make(chan RedemptionTask, bufferSize/2),
		Repo:       repo,
		WorkerNum:  workerNum,
		MaxRetry:   3,
		quit:       make(chan struct{}),
	}
}

func (p *WorkerPool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.wg.Add(1)
	go p.retryWorker()
	logger.Log.Info("redemption worker pool started", zap.Int("workers", p.WorkerNum))
}

// Stop signals the workers, waits for them to drain whatever is still
// queued, and returns once every goroutine has exited. Safe to call
// more than once.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
	logger.Log.Info("redemption worker pool stopped")
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.TaskQueue:
			p.handleTask(id, task)
		case <-p.quit:
			// Drain what is already queued, then exit.
			for {
				select {
				case task := <-p.TaskQueue:
					p.handleTask(id, task)
				default:
					return
				}
			}
		}
	}
}

func (p *WorkerPool) handleTask(id int, task RedemptionTask) {
	err := p.processTask(task)
	if err == nil {
		return
	}

	// The Redis guard already admitted this redemption; a limit
	// error here means the counters diverged, which is not
	// retryable. Everything else gets another attempt.
	if errors.Is(err, repository.ErrRedemptionLimit) {
		p.logFailedTask(task, err)
		return
	}

	logger.Log.Warn("redemption write failed",
		zap.Int("worker", id),
		zap.String("promotion_id", task.PromotionID),
		zap.Error(err))

	if task.Retry < p.MaxRetry {
		task.Retry++
		select {
		case p.RetryQueue <- task:
		default:
			p.logFailedTask(task, err)
		}
	} else {
		p.logFailedTask(task, err)
	}
}

func (p *WorkerPool) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.RetryQueue:
			// Back off before re-queueing.
			time.Sleep(time.Duration(task.Retry) * time.Second)

			select {
			case p.TaskQueue <- task:
			default:
				p.logFailedTask(task, nil)
			}
		case <-p.quit:
			// Workers may have already exited; process leftover
			// retries directly instead of re-queueing.
			for {
				select {
				case task := <-p.RetryQueue:
					if err := p.processTask(task); err != nil {
						p.logFailedTask(task, err)
					}
				default:
					return
				}
			}
		}
	}
}

func (p *WorkerPool) processTask(task RedemptionTask) error {
	return p.Repo.IncrementRedemptions(task.PromotionID)
}

func (p *WorkerPool) logFailedTask(task RedemptionTask, err error) {
	logger.Log.Error("redemption dropped permanently",
		zap.String("promotion_id", task.PromotionID),
		zap.Int("attempts", task.Retry),
		zap.Error(err))
}

func (p *WorkerPool) AddTask(task RedemptionTask) {
	select {
	case p.TaskQueue <- task:
	default:
		p.logFailedTask(task, nil)
	}
}
