package database

import (
	"github.com/hibiken/asynq"
)

// AsynqRedisOpt is the connection option shared by the asynq client and worker.
func AsynqRedisOpt(addr string) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: addr}
}

// NewAsynqClient creates the producer side of the notification queue.
func NewAsynqClient(addr string) *asynq.Client {
	return asynq.NewClient(AsynqRedisOpt(addr))
}

// WorkerConfig builds the asynq server config that consumes queue.
func WorkerConfig(queue string, concurrency int, logger asynq.Logger) asynq.Config {
	return asynq.Config{
		Concurrency: concurrency,
		Logger:      logger,
		Queues:      map[string]int{queue: 1},
	}
}

// NewAsynqServer creates the worker side of the queue the producer enqueues to.
func NewAsynqServer(addr, queue string, concurrency int, logger asynq.Logger) *asynq.Server {
	return asynq.NewServer(AsynqRedisOpt(addr), WorkerConfig(queue, concurrency, logger))
}
