package engine

import (
	"context"
	"sync"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/consumer"
)

// partitionSet routes messages to one worker goroutine per game, so all
// plays of a game are processed in arrival order while different games run
// in parallel.
type partitionSet struct {
	ctx     context.Context
	engine  *Engine
	workers map[string]chan consumer.Message
	mu      sync.Mutex
	wg      sync.WaitGroup
}

const partitionBuffer = 100

func newPartitionSet(ctx context.Context, engine *Engine) *partitionSet {
	return &partitionSet{
		ctx:     ctx,
		engine:  engine,
		workers: make(map[string]chan consumer.Message),
	}
}

// dispatch hands a message to its game's worker, starting one if needed.
func (p *partitionSet) dispatch(msg consumer.Message) {
	gameID := msg.GameID()

	p.mu.Lock()
	ch, ok := p.workers[gameID]
	if !ok {
		ch = make(chan consumer.Message, partitionBuffer)
		p.workers[gameID] = ch
		p.wg.Add(1)
		go p.run(ch)
	}
	p.mu.Unlock()

	select {
	case ch <- msg:
	case <-p.ctx.Done():
	}
}

func (p *partitionSet) run(ch <-chan consumer.Message) {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			p.engine.processMessage(p.ctx, msg)
		}
	}
}

// close stops all workers after in-flight messages drain.
func (p *partitionSet) close() {
	p.mu.Lock()
	for _, ch := range p.workers {
		close(ch)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
