// Package presence 维护在线用户到当前连接的映射.
//
// 每个用户只保留一个连接, 后注册的覆盖先注册的. 每次 Register / Unregister 都会把完整的在线用户列表
// 通过 Notifier 广播一次. 数据只在内存中, 进程重启后为空.
package presence

import (
	"sort"
	"sync"
)

// Notifier 在线列表变化时被调用. 调用按变更顺序串行发生, 不持有 mu, 实现里可以回查 Registry
type Notifier interface {
	NotifyOnline(userIDs []int64)
}

type NotifierFunc func(userIDs []int64)

func (f NotifierFunc) NotifyOnline(userIDs []int64) {
	f(userIDs)
}

type Registry struct {
	notifyMu sync.Mutex // 保证快照与广播按变更顺序成对进行, 先于 mu 获取
	mu       sync.Mutex
	conns    map[int64]string
	notifier Notifier
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[int64]string)}
}

// SetNotifier 注入广播实现, socket hub 创建后调用
func (r *Registry) SetNotifier(n Notifier) {
	r.mu.Lock()
	r.notifier = n
	r.mu.Unlock()
}

func (r *Registry) Register(userID int64, connID string) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	r.conns[userID] = connID
	online, n := r.snapshot()
	r.mu.Unlock()

	notify(n, online)
}

func (r *Registry) Unregister(userID int64) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	delete(r.conns, userID)
	online, n := r.snapshot()
	r.mu.Unlock()

	notify(n, online)
}

// Release 只有当前映射仍指向 connID 时才删除, 旧连接断开不会踢掉新连接
func (r *Registry) Release(userID int64, connID string) bool {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if cur, ok := r.conns[userID]; !ok || cur != connID {
		r.mu.Unlock()
		return false
	}
	delete(r.conns, userID)
	online, n := r.snapshot()
	r.mu.Unlock()

	notify(n, online)
	return true
}

func (r *Registry) Lookup(userID int64) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	connID, ok := r.conns[userID]
	return connID, ok
}

func (r *Registry) Online() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	online, _ := r.snapshot()
	return online
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// 调用方持有锁
func (r *Registry) snapshot() ([]int64, Notifier) {
	ids := make([]int64, 0, len(r.conns))
	for uid := range r.conns {
		ids = append(ids, uid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, r.notifier
}

func notify(n Notifier, online []int64) {
	if n != nil {
		n.NotifyOnline(online)
	}
}
