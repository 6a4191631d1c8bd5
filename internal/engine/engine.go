package engine

import "sync/atomic"

// Engine 保存搜索配置与统计；不缓存局面，每次搜索都从头展开。
// 统计用原子计数，多个 goroutine 共用一个 Engine 时只会互相累加节点数。
type Engine struct {
	cfg SearchConfig

	nodes   int64
	cutoffs int64
}

func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultSearchConfig())
}

func NewEngineWithConfig(cfg SearchConfig) *Engine {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() SearchConfig {
	return e.cfg
}

// Nodes 返回上次 ResetStats 之后访问过的节点数
func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}

func (e *Engine) Cutoffs() int64 {
	return atomic.LoadInt64(&e.cutoffs)
}

func (e *Engine) ResetStats() {
	atomic.StoreInt64(&e.nodes, 0)
	atomic.StoreInt64(&e.cutoffs, 0)
}
